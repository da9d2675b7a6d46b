package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"caesar_cipher/internal/model"
	"caesar_cipher/internal/protocol/bruteforce"
	"caesar_cipher/internal/repository/report"
	"caesar_cipher/internal/utils/log"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

type (
	App struct {
		app        *tview.Application
		candidates *tview.TextView
		input      *tview.InputField
		marker     *tview.InputField
		output     *tview.InputField
		status     *tview.TextView

		mu     sync.Mutex
		gen    uint64 // bumped per search; stale streams must not publish
		result *model.Candidate
	}
)

func NewApp() *App {
	return &App{
		app: tview.NewApplication(),
	}
}

func (c *App) Run(ctx context.Context) {
	go func() {
		<-ctx.Done()
		c.app.Stop()
	}()
	c.renderUI()
}

func (c *App) Stop() {
	c.app.Stop()
}

// blocking function
func (c *App) renderUI() {
	c.candidates = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	c.candidates.SetBorder(true).SetTitle(" Candidates ")

	c.input = tview.NewInputField().
		SetLabel("Ciphertext: ").
		SetFieldWidth(0)
	c.input.SetBorder(true).SetTitle(" Crack ")

	c.marker = tview.NewInputField().
		SetLabel("Marker: ").
		SetText(bruteforce.DefaultMarker).
		SetFieldWidth(0)

	c.output = tview.NewInputField().
		SetLabel("Save to: ").
		SetFieldWidth(0)
	c.output.SetBorder(true).SetTitle(" Output file ")

	c.status = tview.NewTextView().SetDynamicColors(true)

	c.input.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			text := c.input.GetText()
			if text == "" {
				return
			}
			c.candidates.Clear()
			gen := c.beginSearch()
			c.status.SetText("[yellow]searching...[-]")
			go c.crack(gen, text, c.marker.GetText())
		case tcell.KeyTab:
			c.app.SetFocus(c.marker)
		}
	})

	c.marker.SetDoneFunc(func(key tcell.Key) {
		c.app.SetFocus(c.input)
	})

	c.output.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			c.app.SetFocus(c.input)
			return
		}
		if err := c.SaveResult(c.output.GetText()); err != nil {
			c.status.SetText(fmt.Sprintf("[red]%s[-]", tview.Escape(err.Error())))
			return
		}
		c.status.SetText(fmt.Sprintf("[green]saved to %s[-]", tview.Escape(c.output.GetText())))
	})

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(c.candidates, 0, 1, false).
		AddItem(c.input, 3, 0, true).
		AddItem(c.marker, 1, 0, false).
		AddItem(c.output, 3, 0, false).
		AddItem(c.status, 1, 0, false)

	if err := c.app.SetRoot(layout, true).SetFocus(c.input).Run(); err != nil {
		log.Fatal("cannot init app", zap.Error(err))
	}
}

func (c *App) crack(gen uint64, ciphertext, marker string) {
	conn, err := c.initWebhook()
	if err != nil {
		log.Debug("init webhook to server failed", zap.Error(err))
		c.setStatusFor(gen, fmt.Sprintf("[red]cannot reach server: %s[-]", tview.Escape(err.Error())))
		return
	}
	defer conn.Close()

	rec, err := streamCrack(conn, &model.CrackRequest{Ciphertext: ciphertext, Marker: marker}, func(cand model.Candidate) {
		if !c.current(gen) {
			return
		}
		c.app.QueueUpdateDraw(func() {
			fmt.Fprintf(c.candidates, "[yellow]%d:[-] %s\n", cand.Key, tview.Escape(cand.Text))
			c.candidates.ScrollToEnd()
		})
	})
	if errors.Is(err, bruteforce.ErrKeyNotFound) {
		c.setStatusFor(gen, "[red]key not found, nothing to save[-]")
		return
	}
	if err != nil {
		c.setStatusFor(gen, fmt.Sprintf("[red]%s[-]", tview.Escape(err.Error())))
		return
	}

	cand := rec.Candidate()
	if !c.finishSearch(gen, &cand) {
		return
	}
	c.app.QueueUpdateDraw(func() {
		c.status.SetText(fmt.Sprintf("[green]key %d:[-] %s", cand.Key, tview.Escape(cand.Text)))
		c.app.SetFocus(c.output)
	})
}

// SaveResult writes the last recovered candidate to path.
func (c *App) SaveResult(path string) error {
	c.mu.Lock()
	result := c.result
	c.mu.Unlock()

	if result == nil {
		return bruteforce.ErrKeyNotFound
	}
	return report.Write(path, *result)
}

// beginSearch invalidates any running search and clears the last result.
func (c *App) beginSearch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.result = nil
	return c.gen
}

// finishSearch stores cand only if gen is still the latest search.
func (c *App) finishSearch(gen uint64, cand *model.Candidate) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.result = cand
	return true
}

func (c *App) current(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return gen == c.gen
}

func (c *App) setStatusFor(gen uint64, text string) {
	if c.current(gen) {
		c.setStatus(text)
	}
}

func (c *App) setStatus(text string) {
	c.app.QueueUpdateDraw(func() {
		c.status.SetText(text)
	})
}
