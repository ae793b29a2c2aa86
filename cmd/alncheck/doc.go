// 13 Oct 2026

/*
Alncheck checks what a multiple sequence alignment pipeline has written.

Usage:
	alncheck taxa FILE...
	alncheck seqs FILE...
	alncheck dataset FILE...
	alncheck gapcols FILE...
	alncheck concat --result FILE PART...
	alncheck tree TREE ALN
	alncheck trim [--ref NAME] IN [OUT]
	alncheck gapplot [--cell N] [--no-labels] IN OUT.png
	alncheck randseq [--seed N] [--nogap] OUT NSEQ LEN
	alncheck run [--rc N] [--stdout F] [--stderr F] -- ARGS...

Files are in fasta format. Names are everything after the ">", including
blanks. Case is ignored and so are '-' and '?' when sequences are
compared, so an alignment has the same sequences as the file it came from.

taxa passes if all files have the same names.
seqs passes if all files have the same sequences, whatever they are called.
dataset wants both. gapcols fails if any column is only gaps.
concat checks a concatenated alignment against its parts. The parts are
taken in the sorted order of their file names.

trim and randseq are for making test data. trim removes columns of only
gaps, or with --ref, the columns where one sequence has a gap.
If no output file is given, stdout will be used.

run starts the pipeline given by the pipeline.exe setting. Settings come
from a yaml file given with --config, or from the environment, like
	ALNCHECK_PIPELINE_EXE=/usr/local/bin/aligner
	ALNCHECK_PIPELINE_TIMEOUT=10m

Exit codes are 0 if all is well, 1 if a check failed or a file could not
be read, and 2 for a bad command line.
*/
package main
