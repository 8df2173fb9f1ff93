package builder

import "errors"

var (
	ErrNoToolchain    = errors.New("no RISC-V cross toolchain found")
	ErrMissingSource  = errors.New("source file not found")
	ErrAssembleFailed = errors.New("assembler failed")
	ErrArchiveFailed  = errors.New("archiver failed")
	ErrBadArchive     = errors.New("malformed archive")
	ErrWrongMembers   = errors.New("archive members do not match assembled objects")
)
