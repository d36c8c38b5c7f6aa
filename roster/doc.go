// Package roster holds the entities of the student administration tool and the Directory
// that keeps the students and programs tables in memory.
package roster
