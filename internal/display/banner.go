package display

import (
	"fmt"
	"io"

	"github.com/backmassage/mkv2mp4/internal/term"
)

const banner = `           _          ____                  _  _
 _ __ ___ | | ____   |___ \ _ __ ___  _ __ | || |
| '_ ` + "`" + ` _ \| |/ /\ \ / / __) | '_ ` + "`" + ` _ \| '_ \| || |_
| | | | | |   <  \ V / / __/| | | | | | |_) |__   _|
|_| |_| |_|_|\_\  \_/ |_____|_| |_| |_| .__/   |_|
                                      |_|
`

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta+banner)
	if term.Enabled() {
		fmt.Fprintln(w, term.NC)
	}
}
