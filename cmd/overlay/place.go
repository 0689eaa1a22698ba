package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/overlay/internal/canvas"
	"github.com/alexisbeaulieu97/overlay/internal/geometry"
	"github.com/alexisbeaulieu97/overlay/internal/placement"
	"github.com/alexisbeaulieu97/overlay/internal/popup"
	"github.com/alexisbeaulieu97/overlay/internal/ui/components"
)

type placeOptions struct {
	anchor    string
	size      string
	text      string
	placement string
	offset    float64
	bounded   bool
	viewport  string
	noArrow   bool
	preview   bool
	json      bool
}

// terminalSize is swapped in tests.
var terminalSize = func() (int, int, error) { return term.GetSize(int(os.Stdout.Fd())) }

func newPlaceCmd(flags *rootFlags) *cobra.Command {
	opts := &placeOptions{}

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Compute where a floating box goes next to an anchor",
		Long: `Computes the placement result for a floating box against an anchor rectangle.

The box size comes from --size, or from rendering --text as a tooltip.
With --bounded and a --viewport the box flips and shifts to stay on screen.`,
		Example: `  overlay place --anchor 10,5,6,1 --size 12x3 --placement top
  overlay place --anchor 2,1,8,1 --text "Save the file" --viewport 40x10 --bounded --preview`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closeLog, err := openLogger(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()
			log.Debug("place requested", "anchor", opts.anchor, "placement", opts.placement)
			return runPlace(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.anchor, "anchor", "", "Anchor rectangle as x,y,width,height")
	cmd.Flags().StringVar(&opts.size, "size", "", "Floating box size as WIDTHxHEIGHT")
	cmd.Flags().StringVar(&opts.text, "text", "", "Tooltip text to render and measure (\\n separates lines)")
	cmd.Flags().StringVarP(&opts.placement, "placement", "p", placement.Bottom.String(),
		"One of: "+strings.Join(placement.Names(), ", "))
	cmd.Flags().Float64Var(&opts.offset, "offset", 0, "Gap between anchor and box, in cells")
	cmd.Flags().BoolVar(&opts.bounded, "bounded", false, "Flip and shift to stay inside the viewport")
	cmd.Flags().StringVar(&opts.viewport, "viewport", "", "Viewport as WIDTHxHEIGHT, or auto for the terminal size")
	cmd.Flags().BoolVar(&opts.noArrow, "no-arrow", false, "Place without an arrow")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Draw the anchor and tooltip inside the viewport")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output the result as JSON")
	_ = cmd.MarkFlagRequired("anchor")
	cmd.MarkFlagsMutuallyExclusive("size", "text")
	cmd.MarkFlagsOneRequired("size", "text")

	return cmd
}

type placeOutput struct {
	Placement placement.Placement `json:"placement"`
	Origin    pointOutput         `json:"origin"`
	Size      sizeOutput          `json:"size"`
	Arrow     *arrowOutput        `json:"arrow,omitempty"`
	Flipped   bool                `json:"flipped"`
}

type pointOutput struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type sizeOutput struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type arrowOutput struct {
	Edge      string `json:"edge"`
	Align     string `json:"align"`
	Direction string `json:"direction"`
}

func runPlace(cmd *cobra.Command, opts *placeOptions) error {
	anchor, err := parseRect(opts.anchor)
	if err != nil {
		return newCommandError("place", "parsing --anchor", err, "Use x,y,width,height, for example 10,5,6,1.")
	}
	requested, err := placement.Parse(opts.placement)
	if err != nil {
		return newCommandError("place", "parsing --placement", err, "Valid placements: "+strings.Join(placement.Names(), ", ")+".")
	}
	viewport, err := resolveViewport(opts.viewport)
	if err != nil {
		return newCommandError("place", "resolving --viewport", err, "Use WIDTHxHEIGHT or auto.")
	}
	if opts.preview && viewport.Empty() {
		return newCommandError("place", "rendering preview", errors.New("--preview needs a viewport"), "Pass --viewport WIDTHxHEIGHT or --viewport auto.")
	}

	var strategy placement.Strategy = placement.New(requested, opts.offset)
	if opts.bounded && !viewport.Empty() {
		view := geometry.FromOrigin(geometry.Point{}, viewport)
		strategy = placement.WithinBounds(requested, opts.offset, func() geometry.Rect { return view })
	}
	if opts.noArrow {
		strategy = placement.WithoutArrow(strategy)
	}

	var (
		result  placement.Result
		size    geometry.Size
		content string
	)
	if opts.text != "" {
		content, result = layoutTooltip(strategy, anchor, strings.ReplaceAll(opts.text, `\n`, "\n"))
		w, h := lipgloss.Size(content)
		size = geometry.Sz(float64(w), float64(h))
	} else {
		size, err = parseSize(opts.size)
		if err != nil {
			return newCommandError("place", "parsing --size", err, "Use WIDTHxHEIGHT, for example 12x3.")
		}
		result = strategy.Compute(anchor, size)
	}

	out := placeOutput{
		Placement: result.Placement,
		Origin:    pointOutput{X: result.Origin.X, Y: result.Origin.Y},
		Size:      sizeOutput{Width: size.Width, Height: size.Height},
		Flipped:   result.Placement != requested,
	}
	if result.Arrow.Present() {
		out.Arrow = &arrowOutput{
			Edge:      result.Arrow.Edge.String(),
			Align:     result.Arrow.Align.String(),
			Direction: result.Arrow.Direction.String(),
		}
	}

	if opts.json {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "placement: %s\n", out.Placement)
	fmt.Fprintf(w, "origin:    %s\n", result.Origin)
	fmt.Fprintf(w, "size:      %gx%g\n", size.Width, size.Height)
	fmt.Fprintf(w, "arrow:     %s\n", result.Arrow)
	if out.Flipped {
		fmt.Fprintf(w, "flipped:   %s -> %s\n", requested, result.Placement)
	}

	if opts.preview {
		if content == "" {
			content = blankBox(size)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, renderPreview(viewport, anchor, result, content))
	}
	return nil
}

// layoutTooltip renders text as a tooltip and places it.
func layoutTooltip(strategy placement.Strategy, anchor geometry.Rect, text string) (string, placement.Result) {
	ctx := components.DefaultContext()
	box := components.NewTooltipBox(text)
	return popup.Layout(strategy, anchor, func(arrow placement.Arrow) string {
		return box.WithArrow(arrow).ViewWithContext(ctx)
	})
}

func renderPreview(viewport geometry.Size, anchor geometry.Rect, result placement.Result, content string) string {
	c := canvas.New(int(viewport.Width), int(viewport.Height))
	ax, ay := anchor.Origin().Round()
	row := strings.Repeat("#", int(anchor.Width))
	for i := 0; i < int(anchor.Height); i++ {
		c.Draw(ax, ay+i, row)
	}
	x, y := result.Origin.Round()
	c.Draw(x, y, content)
	return c.String()
}

func blankBox(size geometry.Size) string {
	line := strings.Repeat(".", int(size.Width))
	lines := make([]string, int(size.Height))
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func resolveViewport(raw string) (geometry.Size, error) {
	switch strings.TrimSpace(raw) {
	case "":
		return geometry.Size{}, nil
	case "auto":
		w, h, err := terminalSize()
		if err != nil {
			return geometry.Size{}, fmt.Errorf("read terminal size: %w", err)
		}
		return geometry.Sz(float64(w), float64(h)), nil
	default:
		return parseSize(raw)
	}
}

func parseRect(raw string) (geometry.Rect, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return geometry.Rect{}, fmt.Errorf("expected 4 comma separated numbers, got %q", raw)
	}
	vals, err := parseFloats(parts)
	if err != nil {
		return geometry.Rect{}, err
	}
	if vals[2] < 0 || vals[3] < 0 {
		return geometry.Rect{}, fmt.Errorf("negative anchor size in %q", raw)
	}
	return geometry.R(vals[0], vals[1], vals[2], vals[3]), nil
}

func parseSize(raw string) (geometry.Size, error) {
	parts := strings.Split(strings.ToLower(raw), "x")
	if len(parts) != 2 {
		return geometry.Size{}, fmt.Errorf("expected WIDTHxHEIGHT, got %q", raw)
	}
	vals, err := parseFloats(parts)
	if err != nil {
		return geometry.Size{}, err
	}
	if vals[0] < 0 || vals[1] < 0 {
		return geometry.Size{}, fmt.Errorf("negative size in %q", raw)
	}
	return geometry.Sz(vals[0], vals[1]), nil
}

func parseFloats(parts []string) ([]float64, error) {
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", p)
		}
		out[i] = v
	}
	return out, nil
}
