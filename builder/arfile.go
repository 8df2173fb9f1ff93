package builder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Member is one file stored in a static archive.
type Member struct {
	Name string
	Size int64
}

const (
	arMagic     = "!<arch>\n"
	arHeaderLen = 60
)

// ArchiveMembers reads the member list of a common-format ("!<arch>")
// static archive. The symbol index and the GNU long-name table are
// consumed but not reported; long member names are resolved through the
// table. Member data is skipped, never loaded.
func ArchiveMembers(path string) ([]Member, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	magic := make([]byte, len(arMagic))
	if _, err := io.ReadFull(f, magic); err != nil {
		return nil, errors.Join(ErrBadArchive, err)
	}
	if string(magic) != arMagic {
		return nil, errors.Join(ErrBadArchive, fmt.Errorf("bad magic %q", magic))
	}

	var members []Member
	var nameTable string
	header := make([]byte, arHeaderLen)
	for {
		_, err := io.ReadFull(f, header)
		if err == io.EOF {
			return members, nil
		}
		if err != nil {
			return nil, errors.Join(ErrBadArchive, err)
		}
		if string(header[58:60]) != "`\n" {
			return nil, errors.Join(ErrBadArchive, fmt.Errorf("bad member header terminator %q", header[58:60]))
		}

		name := strings.TrimRight(string(header[0:16]), " ")
		size, err := strconv.ParseInt(strings.TrimRight(string(header[48:58]), " "), 10, 64)
		if err != nil {
			return nil, errors.Join(ErrBadArchive, err)
		}
		if size < 0 {
			// A negative size would seek backward and re-read this header
			// forever.
			return nil, errors.Join(ErrBadArchive, fmt.Errorf("negative member size %d", size))
		}

		switch {
		case name == "/" || name == "__.SYMDEF" || name == "/SYM64/":
			// Symbol index.
			if err := skipMember(f, size+size%2); err != nil {
				return nil, err
			}
		case name == "//":
			// GNU long-name table; needed to resolve "/offset" names.
			data := make([]byte, size)
			if _, err := io.ReadFull(f, data); err != nil {
				return nil, errors.Join(ErrBadArchive, err)
			}
			nameTable = string(data)
			if size%2 == 1 {
				if err := skipMember(f, 1); err != nil {
					return nil, err
				}
			}
		default:
			resolved, err := resolveName(name, nameTable)
			if err != nil {
				return nil, err
			}
			members = append(members, Member{Name: resolved, Size: size})
			if err := skipMember(f, size+size%2); err != nil {
				return nil, err
			}
		}
	}
}

func skipMember(f *os.File, n int64) error {
	if _, err := f.Seek(n, io.SeekCurrent); err != nil {
		return errors.Join(ErrBadArchive, err)
	}
	return nil
}

func resolveName(name, nameTable string) (string, error) {
	if strings.HasPrefix(name, "/") {
		// GNU style: "/offset" into the long-name table.
		offset, err := strconv.Atoi(name[1:])
		if err != nil || offset < 0 || offset >= len(nameTable) {
			return "", errors.Join(ErrBadArchive, fmt.Errorf("bad long name reference %q", name))
		}
		rest := nameTable[offset:]
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			rest = rest[:i]
		}
		return strings.TrimSuffix(rest, "/"), nil
	}
	// Short names carry a trailing "/" in GNU archives; BSD archives do
	// not.
	return strings.TrimSuffix(name, "/"), nil
}
