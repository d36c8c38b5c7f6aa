package roster

import (
	"cmp"
	"context"
	"errors"
	"maps"
	"slices"

	"golang.org/x/sync/errgroup"

	collectioncache "github.com/karupanerura/collection-cache"
	"github.com/karupanerura/collection-cache/internal/iterutil"
)

// StudentCache is the cache of the students table.
type StudentCache = collectioncache.CollectionCache[string, Student]

// ProgramCache is the cache of the programs table.
type ProgramCache = collectioncache.CollectionCache[string, Program]

// Directory owns the students and programs caches of one session.
// The caches are created by the caller and handed to the directory, which closes them on Close.
type Directory struct {
	students *StudentCache
	programs *ProgramCache
}

var _ collectioncache.RefreshCollection = (*Directory)(nil)

// NewDirectory creates a new Directory over the given caches.
func NewDirectory(students *StudentCache, programs *ProgramCache) *Directory {
	return &Directory{
		students: students,
		programs: programs,
	}
}

// NewStudentCache creates a student cache keyed by StudentID.
func NewStudentCache(src collectioncache.CollectionSource[Student], opts ...collectioncache.Option[string, Student]) *StudentCache {
	return collectioncache.New(src, StudentID, opts...)
}

// NewProgramCache creates a program cache keyed by ProgramID.
func NewProgramCache(src collectioncache.CollectionSource[Program], opts ...collectioncache.Option[string, Program]) *ProgramCache {
	return collectioncache.New(src, ProgramID, opts...)
}

// Students returns the students cache.
func (d *Directory) Students() *StudentCache {
	return d.students
}

// Programs returns the programs cache.
func (d *Directory) Programs() *ProgramCache {
	return d.programs
}

// Initialize starts loading both tables in the background.
// The returned channel receives the joined outcome of both loads and is closed afterwards.
func (d *Directory) Initialize(ctx context.Context) <-chan error {
	students := d.students.Initialize(ctx)
	programs := d.programs.Initialize(ctx)

	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- errors.Join(<-students, <-programs)
	}()
	return done
}

// Refresh reloads both tables concurrently and returns the first error.
// A failing table does not cancel the load of the other one.
func (d *Directory) Refresh(ctx context.Context) error {
	var eg errgroup.Group
	eg.Go(func() error {
		return d.students.Refresh(ctx)
	})
	eg.Go(func() error {
		return d.programs.Refresh(ctx)
	})
	return eg.Wait()
}

// IsLoading reports whether either table is still loading.
func (d *Directory) IsLoading() bool {
	return d.students.State().IsLoading || d.programs.State().IsLoading
}

// Snapshot is the content of both tables at one point in time.
type Snapshot struct {
	Students map[string]Student
	Programs map[string]Program
}

// Wait blocks until neither table is loading and returns their content.
func (d *Directory) Wait(ctx context.Context) (Snapshot, error) {
	students, err := d.students.Wait(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	programs, err := d.programs.Wait(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Students: students.Data, Programs: programs.Data}, nil
}

// StudentsInProgram returns the students enrolled in the program, sorted by last name, first name and identifier.
func (d *Directory) StudentsInProgram(programID string) []Student {
	students := d.students.State().Data
	enrolled := slices.Collect(iterutil.Filter(maps.Values(students), func(s Student) bool {
		return s.ProgramID == programID
	}))
	slices.SortFunc(enrolled, compareStudents)
	return enrolled
}

func compareStudents(a, b Student) int {
	return cmp.Or(
		cmp.Compare(a.LastName, b.LastName),
		cmp.Compare(a.FirstName, b.FirstName),
		cmp.Compare(a.ID, b.ID),
	)
}

// ProgramOf returns the program the student is enrolled in.
func (d *Directory) ProgramOf(s Student) (Program, bool) {
	if s.ProgramID == "" {
		return Program{}, false
	}
	return d.programs.Get(s.ProgramID)
}

// EnrolledProgramIDs returns the identifiers of the programs that have at least one student,
// in the order of the students' identifiers.
func (d *Directory) EnrolledProgramIDs() []string {
	students := d.students.State().Data
	ids := slices.Sorted(maps.Keys(students))
	programIDs := iterutil.Map(slices.Values(ids), func(id string) string {
		return students[id].ProgramID
	})
	return slices.Collect(iterutil.Uniq(iterutil.Filter(programIDs, func(id string) bool {
		return id != ""
	})))
}

// Close closes both caches.
func (d *Directory) Close() {
	d.students.Close()
	d.programs.Close()
}
