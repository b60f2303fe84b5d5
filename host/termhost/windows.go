// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: host/termhost/windows.go
// Summary: Window table for the terminal host; launched commands run on a pty.

package termhost

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/creack/pty"
	"github.com/framegrace/texelbar/host"
	"github.com/gdamore/tcell/v2"
)

type window struct {
	id       int
	title    string
	screenID int
	frame    host.Rect
	cmd      *exec.Cmd
	pty      *os.File
}

// windowsChanged marks interrupts posted when the window table changes.
type windowsChanged struct{}

// AddWindow registers a window without a process behind it and focuses it.
func (h *Host) AddWindow(title string, screenID int, frame host.Rect) int {
	h.mu.Lock()
	id := h.addWindowLocked(&window{title: title, screenID: screenID, frame: frame})
	h.mu.Unlock()
	h.notifyWindowsChanged()
	return id
}

func (h *Host) addWindowLocked(w *window) int {
	w.id = h.nextWindowID
	h.nextWindowID++
	h.windows = append(h.windows, w)
	h.focusedID = w.id
	h.dirty = true
	return w.id
}

// RemoveWindow drops a window from the table. Focus moves to the most
// recently added remaining window.
func (h *Host) RemoveWindow(id int) {
	h.mu.Lock()
	removed := h.removeWindowLocked(id)
	h.mu.Unlock()
	if removed {
		h.notifyWindowsChanged()
	}
}

func (h *Host) removeWindowLocked(id int) bool {
	for i, w := range h.windows {
		if w.id != id {
			continue
		}
		h.windows = append(h.windows[:i], h.windows[i+1:]...)
		if h.focusedID == id {
			h.focusedID = 0
			if n := len(h.windows); n > 0 {
				h.focusedID = h.windows[n-1].id
			}
		}
		h.dirty = true
		return true
	}
	return false
}

func (h *Host) notifyWindowsChanged() {
	if err := h.screen.PostEvent(tcell.NewEventInterrupt(windowsChanged{})); err != nil {
		h.logger.Printf("TermHost: Dropped windows-changed notification: %v", err)
	}
}

// Launch runs command on a pty and opens a window for it on the screen.
// The window disappears when the process exits.
func (h *Host) Launch(command string, screenID int) error {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return errors.New("termhost: empty command")
	}

	h.mu.Lock()
	screen, ok := h.screenByID(screenID)
	h.mu.Unlock()
	if !ok {
		return fmt.Errorf("termhost: unknown screen %d", screenID)
	}

	cmd := exec.Command(fields[0], fields[1:]...)
	cmd.Env = append(os.Environ(), "TERM=dumb")
	f, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("termhost: launch %q: %w", command, err)
	}

	h.mu.Lock()
	frame := cascade(screen, len(h.windows))
	id := h.addWindowLocked(&window{
		title:    fields[0],
		screenID: screenID,
		frame:    frame,
		cmd:      cmd,
		pty:      f,
	})
	h.mu.Unlock()
	h.logger.Printf("TermHost: Launched %q as window %d (pid %d)", command, id, cmd.Process.Pid)
	h.notifyWindowsChanged()

	h.procs.Add(1)
	go func() {
		defer h.procs.Done()
		// Output is drained so the child never blocks on a full pty.
		_, _ = io.Copy(io.Discard, f)
	}()
	h.procs.Add(1)
	go func() {
		defer h.procs.Done()
		err := cmd.Wait()
		_ = f.Close()
		if err != nil {
			h.logger.Printf("TermHost: Window %d exited: %v", id, err)
		}
		h.RemoveWindow(id)
	}()
	return nil
}

// cascade offsets each new window so stacked windows stay distinguishable.
func cascade(screen host.ScreenInfo, n int) host.Rect {
	step := n % 5
	w := screen.Width / 2
	if w < 12 {
		w = screen.Width
	}
	h := screen.Height / 2
	if h < 3 {
		h = screen.Height
	}
	x := screen.X + 2 + step*2
	if x+w > screen.X+screen.Width {
		x = screen.X + screen.Width - w
	}
	y := screen.Y + 1 + step
	if y+h > screen.Y+screen.Height {
		y = screen.Y + screen.Height - h
	}
	return host.Rect{X: x, Y: y, W: w, H: h}
}

// Close kills every launched process and waits for their windows to go.
func (h *Host) Close() {
	h.mu.Lock()
	for _, w := range h.windows {
		if w.cmd != nil && w.cmd.Process != nil {
			_ = w.cmd.Process.Kill()
		}
	}
	h.mu.Unlock()
	h.procs.Wait()
}

func (h *Host) snapshot(w *window) host.Window {
	return host.Window{
		ID:       w.id,
		Title:    w.title,
		ScreenID: w.screenID,
		Frame:    w.frame,
		Focused:  w.id == h.focusedID,
	}
}

// Windows returns the windows on a screen ordered by id.
func (h *Host) Windows(screenID int) []host.Window {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []host.Window
	for _, w := range h.windows {
		if w.screenID == screenID {
			out = append(out, h.snapshot(w))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (h *Host) FocusedWindow() (host.Window, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, w := range h.windows {
		if w.id == h.focusedID {
			return h.snapshot(w), true
		}
	}
	return host.Window{}, false
}

func (h *Host) SetFrame(id int, frame host.Rect) error {
	h.mu.Lock()
	w := h.findLocked(id)
	if w == nil {
		h.mu.Unlock()
		return host.ErrNoWindow
	}
	w.frame = frame
	h.mu.Unlock()
	if w.pty != nil && frame.W > 2 && frame.H > 2 {
		_ = pty.Setsize(w.pty, &pty.Winsize{Cols: uint16(frame.W - 2), Rows: uint16(frame.H - 2)})
	}
	h.markDirty()
	return nil
}

// Focus raises the window to the top of the window stack.
func (h *Host) Focus(id int) error {
	h.mu.Lock()
	w := h.findLocked(id)
	if w == nil {
		h.mu.Unlock()
		return host.ErrNoWindow
	}
	for i, other := range h.windows {
		if other == w {
			h.windows = append(h.windows[:i], h.windows[i+1:]...)
			h.windows = append(h.windows, w)
			break
		}
	}
	h.focusedID = id
	h.mu.Unlock()
	h.markDirty()
	h.notifyWindowsChanged()
	return nil
}

// FocusAt focuses the topmost window under the point, if any.
func (h *Host) FocusAt(x, y int) bool {
	h.mu.Lock()
	id := 0
	for i := len(h.windows) - 1; i >= 0; i-- {
		if h.windows[i].frame.Contains(x, y) {
			id = h.windows[i].id
			break
		}
	}
	h.mu.Unlock()
	if id == 0 {
		return false
	}
	return h.Focus(id) == nil
}

func (h *Host) findLocked(id int) *window {
	for _, w := range h.windows {
		if w.id == id {
			return w
		}
	}
	return nil
}

// drawWindowLocked paints a titled box; the focused window gets a bold frame.
func (h *Host) drawWindowLocked(w *window) {
	r := w.frame
	if r.W < 2 || r.H < 2 {
		return
	}
	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorSilver)
	if w.id == h.focusedID {
		style = style.Foreground(tcell.ColorWhite).Bold(true)
	}
	body := tcell.StyleDefault.Background(tcell.ColorBlack)
	right, bottom := r.X+r.W-1, r.Y+r.H-1

	for y := r.Y + 1; y < bottom; y++ {
		for x := r.X + 1; x < right; x++ {
			h.screen.SetContent(x, y, ' ', nil, body)
		}
		h.screen.SetContent(r.X, y, tcell.RuneVLine, nil, style)
		h.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	for x := r.X + 1; x < right; x++ {
		h.screen.SetContent(x, r.Y, tcell.RuneHLine, nil, style)
		h.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	h.screen.SetContent(r.X, r.Y, tcell.RuneULCorner, nil, style)
	h.screen.SetContent(right, r.Y, tcell.RuneURCorner, nil, style)
	h.screen.SetContent(r.X, bottom, tcell.RuneLLCorner, nil, style)
	h.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)

	x := r.X + 2
	for _, ch := range " " + w.title + " " {
		if x >= right-1 {
			break
		}
		h.screen.SetContent(x, r.Y, ch, nil, style)
		x++
	}
}
