// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ui owns every byte the user sees: the file listing, the mode
// banner, the colored rename preview, the prompts and the per-entry
// progress messages. Nothing here touches the filesystem.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/walteh/renamerc/pkg/plan"
)

const divider = "---------------------------------------------"

// 📢 UI writes user-facing output to out and reads prompt answers from in.
// In production out is stdout and in is stdin; tests hand it buffers.
type UI struct {
	out io.Writer
	in  *bufio.Scanner

	info    *pterm.PrefixPrinter
	success *pterm.PrefixPrinter
	failure *pterm.PrefixPrinter

	oldColor   *color.Color
	newColor   *color.Color
	arrowColor *color.Color
}

// 🏭 New creates a UI. noColor strips ANSI colors from the preview and the
// divider, for dumb terminals and tests.
func New(out io.Writer, in io.Reader, noColor bool) *UI {
	u := &UI{
		out:        out,
		in:         bufio.NewScanner(in),
		oldColor:   color.New(color.FgRed),
		newColor:   color.New(color.FgGreen),
		arrowColor: color.New(color.FgYellow),
	}
	if noColor {
		u.oldColor.DisableColor()
		u.newColor.DisableColor()
		u.arrowColor.DisableColor()
	} else {
		u.oldColor.EnableColor()
		u.newColor.EnableColor()
		u.arrowColor.EnableColor()
	}

	u.info = pterm.Info.WithWriter(out)
	u.success = pterm.Success.WithWriter(out).WithPrefix(pterm.Prefix{Text: "✅"})
	u.failure = pterm.Error.WithWriter(out).WithPrefix(pterm.Prefix{Text: "❌"})
	return u
}

// ListFiles prints the full enumerated listing, one name per line.
// Interactive mode only; the non-interactive path goes straight to the
// preview.
func (u *UI) ListFiles(dir string, names []string) {
	fmt.Fprintf(u.out, "List %s:\n", dir)
	for _, name := range names {
		fmt.Fprintln(u.out, name)
	}
}

// Banner announces the pattern and substitution in non-interactive mode.
func (u *UI) Banner(pattern, from, to string) {
	u.Divider()
	fmt.Fprintf(u.out, "Pattern: %s\n", pattern)
	fmt.Fprintf(u.out, "Replace: '%s' -> '%s'\n", from, to)
}

func (u *UI) Divider() {
	fmt.Fprintln(u.out, u.arrowColor.Sprint(divider))
}

// Printf writes a plain informational line.
func (u *UI) Printf(format string, args ...any) {
	fmt.Fprintf(u.out, format+"\n", args...)
}

// RenderPlan shows every planned rename, old name red, new name green, in
// plan order. Called before any mutation happens.
func (u *UI) RenderPlan(entries []plan.Entry) {
	fmt.Fprintf(u.out, "\nMatched files and rename preview:\n")
	for _, e := range entries {
		fmt.Fprintf(u.out, "%s %s %s\n",
			u.oldColor.Sprint(e.Old),
			u.arrowColor.Sprint("->"),
			u.newColor.Sprint(e.New))
	}
}

// Prompt writes label and reads one line, trimmed of surrounding
// whitespace. EOF yields an empty string, which every caller treats as
// cancellation.
func (u *UI) Prompt(label string) (string, error) {
	fmt.Fprint(u.out, label)
	if !u.in.Scan() {
		if err := u.in.Err(); err != nil {
			return "", err
		}
		return "", nil
	}
	return strings.TrimSpace(u.in.Text()), nil
}

// Confirm asks the go/no-go question. Only a trimmed, lower-cased "y"
// proceeds; "n", "yes", an empty line and EOF all abort.
func (u *UI) Confirm() (bool, error) {
	answer, err := u.Prompt("\nContinue? (y/N): ")
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == "y", nil
}

// RenameDone reports one applied rename.
func (u *UI) RenameDone(oldPath, newPath string) {
	fmt.Fprintf(u.out, "Renamed: %s -> %s\n", oldPath, newPath)
}

// RenameFailed reports one failed rename. The batch keeps going.
func (u *UI) RenameFailed(oldPath string, err error) {
	u.failure.Printfln("Failed to rename %s: %v", oldPath, err)
}

// Completed reports the end of the batch. Printed whether or not
// individual entries failed.
func (u *UI) Completed() {
	u.success.Println("Rename complete.")
}

// Cancelled reports a user abort, at any prompt.
func (u *UI) Cancelled() {
	u.info.Println("Operation cancelled.")
}
