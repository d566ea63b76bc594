// Package crypt provides the content hash and symmetric encryption used for
// secret configuration values.
//
// The initialization vector of a generated file is derived from the file's
// own content: the raw configuration object is serialized to canonical JSON
// (object keys sorted, numbers kept as written) and digested with MD5. The
// hex digest is published in the generated source as encryptionKeyIV and its
// first 16 bytes seed AES-128 in CBC mode with PKCS#7 padding.
//
// Because the digest is a pure function of the configuration, regenerating
// an unchanged file yields byte-identical ciphertext.
package crypt
