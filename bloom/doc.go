package bloom

/*

# Bloom filter

This package provides a fixed size, in-memory Bloom filter over arbitrary byte
strings.

It keeps the style of the `go-merklelog/bloom` primitives:

- small, composable functions
- an explicit bit layout
- index arithmetic on byte slices

## What Bloom filters are (and are not)

A Bloom filter is a *probabilistic set summary*:

- If the filter says "definitely absent", the element was never added.
- If the filter says "possibly present", the element may or may not have been
  added (false positives are possible).

The filter does not store elements. They cannot be listed or removed, and the
filter cannot be resized or merged. The hash is a fast non-cryptographic
mixer. It offers no resistance to adversarially chosen input.

## Sizing

DeriveParameters turns an expected element count n and a target
false-positive rate eps into a bit count m and a hash count k:

	m = ceil(-n * ln(eps) / ln(2)^2)
	k = ceil((m / n) * ln(2))

Bad inputs are normalized rather than rejected: n == 0 is treated as 1 and an
eps outside (0, 1) becomes 0.01. New takes m and k directly.

## Hashing

Mix is a streaming multiply-xor-shift hash with a SplitMix64 finalizer. The
two base hashes h1 and h2 come from Mix under two fixed seeds. h2 is forced
odd.

## Indexing and bit numbering

Bit positions come from Kirsch-Mitzenmacher double hashing:

	position_i = (h1 + i*h2) mod m,  i = 0..k-1

The product i*h2 is formed in 128 bits before the reduction.

Bit i lives in byte i/8 at bit i%8, least-significant bit first (LSB0). A
filter of m bits occupies ceil(m/8) bytes. Integers are hashed over their
little-endian encoding.

*/
