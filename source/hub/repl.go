package hub

import (
	"strings"

	"github.com/lmorg/readline/v4"

	"github.com/nthery/pratt-parser/source/text"
)

func (hub *Hub) Repl() {
	rline := readline.NewInstance()
	// Typing '(' gets you the ')' for free, with the cursor between them.
	handler := func(i int, st *readline.EventState) *readline.EventReturn {
		return &readline.EventReturn{
			SetLine:  []rune(st.Line[:st.CursorPos] + ")" + st.Line[st.CursorPos:]),
			Continue: true,
			SetPos:   st.CursorPos,
		}
	}
	rline.AddEvent("(", handler)
	for {
		rline.SetPrompt(text.Cyan("pratt") + " " + text.PROMPT)
		line, e := rline.Readline()
		if e == readline.ErrCtrlC {
			hub.WriteString(text.Green("OK") + "\n")
			return
		}
		if e != nil {
			return
		}
		if hub.Do(strings.TrimSpace(line)) {
			return
		}
	}
}
