package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/annotext/annotext/span"
	"github.com/pterm/pterm"
)

func (intp *Intp) execute(fields []string) (quit bool, err error) {
	switch fields[0] {
	case "quit":
		return true, nil
	case "help":
		help()
		return false, nil
	case "info":
		return false, intp.infoCmd()
	case "load":
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: load <path>")
		}
		return false, intp.loadModel(fields[1])
	case "conv":
		return false, intp.convCmd(fields[1:])
	default:
		return false, fmt.Errorf("unknown command %q; try 'help'", fields[0])
	}
}

// infoCmd prints the header fields of the loaded model.
func (intp *Intp) infoCmd() error {
	if intp.model == nil {
		return fmt.Errorf("no model loaded; use 'load <path>' or the -model flag")
	}
	rows := pterm.TableData{
		{"field", "value"},
		{"file", intp.path},
		{"name", intp.model.Name()},
		{"version", fmt.Sprintf("%d", intp.model.Version())},
		{"locales", intp.model.Locales()},
		{"payload", fmt.Sprintf("%d bytes", len(intp.model.Payload()))},
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

// convCmd converts a span between index spaces:
//
//	conv cp|utf16 <start> <end> <text...>
//
// 'cp' treats start/end as codepoint offsets and converts to UTF-16 code
// units; 'utf16' converts the other way.
func (intp *Intp) convCmd(args []string) error {
	if len(args) < 4 {
		return fmt.Errorf("usage: conv cp|utf16 <start> <end> <text...>")
	}
	start, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("span start: %v", err)
	}
	end, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("span end: %v", err)
	}
	text := strings.Join(args[3:], " ")
	in := span.New(start, end)

	var out span.Span
	var from, to string
	switch args[0] {
	case "cp":
		out = span.ToUTF16(text, in)
		from, to = "codepoints", "UTF-16 units"
	case "utf16":
		out = span.ToCodepoints(text, in)
		from, to = "UTF-16 units", "codepoints"
	default:
		return fmt.Errorf("unknown index space %q (want cp or utf16)", args[0])
	}

	m := span.NewOffsetMap(text)
	pterm.Printf("text has %d codepoints, %d UTF-16 units\n",
		m.CodepointLen(), m.UTF16Len())
	pterm.Printf("%s %v  ->  %s %v\n", from, in, to, out)
	if !out.Resolved() {
		pterm.Error.Println("span does not fully resolve; -1 endpoints are unmapped")
	}
	return nil
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	info                              print header fields of the loaded model
	load <path>                       load a model blob
	conv cp <a> <b> <text...>         map a codepoint span to UTF-16 units
	conv utf16 <a> <b> <text...>      map a UTF-16 span to codepoints
	quit                              leave (also <ctrl>D)
	`)
}
