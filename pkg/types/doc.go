// Package types defines the Cupboard and Table interfaces of the procurement
// data service, the entity types of each feature, configuration, and the
// standard errors shared by backends and callers.
package types
