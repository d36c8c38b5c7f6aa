// Package source provides adapters for implementing the collectioncache.CollectionSource interface.
//
// FunctionSource turns a plain function into a source, StaticSource serves a fixed slice,
// and LintSource checks that another source honors the CollectionSource contract.
package source
