package cli

import (
	"strings"

	"vtp/internal/domain"
)

const (
	// SkipFlag introduces a run of base names to skip
	SkipFlag = "-s"
	// SkipFlagLong is the long spelling of SkipFlag
	SkipFlagLong = "--skip"
)

type scanState int

const (
	scanning scanState = iota
	collecting
)

// ParseSkipArgs builds the skip set from raw command-line tokens.
//
// Each -s starts collecting names until the tokens run out or a token
// beginning with '-' appears; that token is then handled as if no -s were
// active, so "-s a.v -x -s b.v" skips a.v and b.v and ignores -x. The
// -s=name form adds name verbatim, which is the only way to skip a name that
// itself starts with '-'. Anything else is ignored, never rejected.
func ParseSkipArgs(args []string) domain.SkipSet {
	var names []string
	state := scanning

	for _, tok := range args {
		if state == collecting {
			if !isFlag(tok) {
				if tok != "" {
					names = append(names, tok)
				}
				continue
			}
			state = scanning
		}

		switch {
		case tok == SkipFlag || tok == SkipFlagLong:
			state = collecting
		case strings.HasPrefix(tok, SkipFlag+"=") || strings.HasPrefix(tok, SkipFlagLong+"="):
			if _, name, _ := strings.Cut(tok, "="); name != "" {
				names = append(names, name)
			}
		}
	}

	return domain.NewSkipSet(names...)
}

func isFlag(tok string) bool {
	return strings.HasPrefix(tok, "-")
}
