/*
Package passphrase assembles passphrases out of a corpus of words.

A passphrase is [Parts] words drawn without replacement,
each followed by a single random digit and joined by [Separator]:

	Swan7-Heron0-Robin7-Crane9

Randomness comes from a [Source], injected rather than reached for globally,
so tests can script every draw.
[NewSource] returns a fresh, independently seeded [Source];
handlers take one per request, leaving no generator state shared between requests.
*/
package passphrase
