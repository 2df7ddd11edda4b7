// Package verushash implements the VerusHash family of proof-of-work hash functions: v1, v2, v2b and v2b1.
//
// Every variant frames the message into 64-byte blocks, absorbs them in order with a wide-pipe compression
// built on a Haraka-512 style AES permutation, and truncates the final 512-bit state to a 256-bit digest.
// Later variants add an output transform before truncation and retune the round constants for domain separation.
//
// Digests are returned in native byte order. Use types.Hash DisplayString for the byte-reversed form node software prints.
//
// All functions are safe for concurrent use. Round constant tables are built once on first use and never modified.
package verushash
