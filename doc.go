/*
Package lexicon provides an in-memory word set backed by a trie. It supports
exact membership, prefix queries, substitution-distance correction
suggestions and wildcard pattern matching over lowercase ASCII words.
*/
package lexicon
