// Package retag fixes the tags of audio files that are already on disk.
//
// A Provider decides the tags for each file of a directory, typically from
// the filename and the directory name. The Fixer merges those tags into
// each file: fields the provider does not compute are left untouched, unlike
// freshly downloaded episodes, which are cleared before tagging.
package retag
