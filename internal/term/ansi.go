package term

// Control sequences. Hard-coded CSI forms rather than terminfo lookups;
// every terminal this runs on speaks these.
const (
	cup      = "\x1b[%d;%dH" // cursor position, 1-based row;col
	el       = "\x1b[K"      // erase to end of line
	cls      = "\x1b[2J"     // erase entire screen
	home     = "\x1b[H"

	fgRGBSet = "\x1b[38;2;%d;%d;%dm"
	sgrReset = "\x1b[0m"

	civis = "\x1b[?25l" // hide cursor
	cnorm = "\x1b[?25h" // show cursor
	smcup = "\x1b[?1049h" // enter alternate screen
	rmcup = "\x1b[?1049l" // leave alternate screen
)
