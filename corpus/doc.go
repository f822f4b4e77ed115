/*
Package corpus turns a tabular dataset of bird names into the word list passphrases are built from
and loads that word list into memory.

# Extraction

[Extract] reads CSV with a header row and writes one cleaned token per line:
rows whose display name is absent, shorter than [MinNameLen] or longer than [MaxNameLen] runes,
or carrying a parenthesized qualifier are skipped;
spaces, hyphens and apostrophes are removed from the rest.
Row order is preserved and nothing is deduplicated.

[ExtractFile] does the same between files and replaces the word list atomically,
so a failed run never leaves behind a partial word list.

# Loading

[Load] reads the word list into an immutable [*Corpus].
A [*Corpus] is never written to after construction
and is safe to share between any number of goroutines without locking.

[Prepare] ties the two together for process startup:
extraction runs only when the word list does not exist yet.
*/
package corpus
