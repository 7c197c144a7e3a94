// ABOUTME: place command: computes one placement from rectangles given on the command line
// ABOUTME: The viewport defaults to the current terminal size; --json prints machine-readable output

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apuya/react-basics-ui-sub003/pkg/tui/anchor"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/placement"
)

type placeFlags struct {
	trigger  string
	content  string
	viewport string
	side     string
	align    string
	padding  int
	gap      int
	json     bool
}

func (c *cli) placeCommand() *cobra.Command {
	var f placeFlags

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Compute where a panel goes next to a trigger",
		Long: `Compute where a panel goes next to a trigger.

Rectangles are given in terminal cells. The trigger is top,left,width,height;
content and viewport are width,height. Without --viewport the current
terminal size is used.`,
		Example: `  anchor place --trigger 10,10,100,30 --content 200,100 --viewport 400,300 --padding 8
  anchor place --trigger 2,70,8,1 --content 24,10 --side bottom --align start --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := c.placeRequest(f)
			if err != nil {
				return err
			}
			return writePlacement(cmd.OutOrStdout(), req, placement.Compute(req), f.json)
		},
	}

	cmd.Flags().StringVar(&f.trigger, "trigger", "", "trigger rectangle: top,left,width,height")
	cmd.Flags().StringVar(&f.content, "content", "", "panel size: width,height (default 32,10)")
	cmd.Flags().StringVar(&f.viewport, "viewport", "", "viewport size: width,height (default: terminal size)")
	cmd.Flags().StringVar(&f.side, "side", "bottom", "preferred side: top, bottom, left, right")
	cmd.Flags().StringVar(&f.align, "align", "center", "preferred alignment: start, center, end")
	cmd.Flags().IntVar(&f.padding, "padding", anchor.DefaultPadding, "minimum distance from the viewport edges")
	cmd.Flags().IntVar(&f.gap, "gap", 0, "distance between trigger and panel")
	cmd.Flags().BoolVar(&f.json, "json", false, "print JSON")
	_ = cmd.MarkFlagRequired("trigger")

	return cmd
}

func (c *cli) placeRequest(f placeFlags) (placement.Request, error) {
	var req placement.Request

	t, err := parseInts(f.trigger, 4)
	if err != nil {
		return req, fmt.Errorf("--trigger: %w", err)
	}
	req.Trigger = placement.RectFrom(t[0], t[1], t[2], t[3])

	if f.content != "" {
		s, err := parseInts(f.content, 2)
		if err != nil {
			return req, fmt.Errorf("--content: %w", err)
		}
		req.Content = placement.Size{Width: s[0], Height: s[1]}
	}

	if f.viewport != "" {
		v, err := parseInts(f.viewport, 2)
		if err != nil {
			return req, fmt.Errorf("--viewport: %w", err)
		}
		req.Viewport = placement.Viewport{Width: v[0], Height: v[1]}
	} else {
		vp, ok := anchor.TerminalViewport{Term: c.term}.Viewport()
		if !ok {
			return req, fmt.Errorf("no terminal to measure; pass --viewport")
		}
		req.Viewport = vp
	}
	if !req.Viewport.Valid() {
		return req, fmt.Errorf("--viewport: %dx%d has no area", req.Viewport.Width, req.Viewport.Height)
	}

	if req.Side, err = placement.ParseSide(f.side); err != nil {
		return req, fmt.Errorf("--side: %w", err)
	}
	if req.Align, err = placement.ParseAlign(f.align); err != nil {
		return req, fmt.Errorf("--align: %w", err)
	}
	if f.padding < 0 || f.gap < 0 {
		return req, fmt.Errorf("--padding and --gap must not be negative")
	}
	req.Padding, req.Gap = f.padding, f.gap

	c.logger.Debug("request %+v", req)
	return req, nil
}

// parseInts splits a comma-separated list of exactly n integers.
func parseInts(s string, n int) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %q", n, s)
	}
	out := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}

type placementJSON struct {
	Side   string `json:"side"`
	Align  string `json:"align"`
	Top    int    `json:"top"`
	Left   int    `json:"left"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Flip   bool   `json:"flipped"`
}

func writePlacement(w io.Writer, req placement.Request, res placement.Result, asJSON bool) error {
	size := req.Content
	if size.Width <= 0 {
		size.Width = placement.DefaultContentSize.Width
	}
	if size.Height <= 0 {
		size.Height = placement.DefaultContentSize.Height
	}
	flipped := res.Side != req.Side

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(placementJSON{
			Side:   res.Side.String(),
			Align:  res.Align.String(),
			Top:    res.Top,
			Left:   res.Left,
			Width:  size.Width,
			Height: size.Height,
			Flip:   flipped,
		})
	}

	note := ""
	if flipped {
		note = fmt.Sprintf(" (flipped from %s)", req.Side)
	}
	_, err := fmt.Fprintf(w, "%s top=%d left=%d size=%dx%d%s\n",
		res.Placement(), res.Top, res.Left, size.Width, size.Height, note)
	return err
}
