package cli

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"
	"strings"

	"jigsaw/src"
	"jigsaw/src/base"

	"golang.org/x/term"
)

type DrawFunc func(out io.Writer, pb *src.PuzzleBuilder, width int)

type CLIProcessing struct {
	builder *src.PuzzleBuilder
	draw    DrawFunc
	in      io.Reader
	out     io.Writer
	width   int
}

func NewCLI(b *src.PuzzleBuilder, draw DrawFunc) *CLIProcessing {
	return NewCLIWithIO(b, draw, os.Stdin, os.Stdout)
}

func NewCLIWithIO(b *src.PuzzleBuilder, draw DrawFunc, in io.Reader, out io.Writer) *CLIProcessing {
	return &CLIProcessing{builder: b, draw: draw, in: in, out: out, width: previewWidth(out)}
}

// preview width in terminal columns; 80 when out is not a terminal
func previewWidth(out io.Writer) int {
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 10 {
			return w - 2
		}
	}
	return 80
}

const helpText = `Commands:
  show              draw the table
  status            connections, progress and time
  pieces            list piece positions
  press x y         press the pointer at x,y
  move x y          move the pointer to x,y
  release x y       release the pointer at x,y
  drag x0 y0 x1 y1  press, move and release in one go
  solve             lay every piece at its place
  help              this text
  quit, q           leave`

// RunLineMode reads one command per line until quit, EOF or a solved puzzle.
func (c *CLIProcessing) RunLineMode() error {
	if c.builder.Status() == base.InvalidGame {
		return src.ErrNotCreated
	}
	scanner := bufio.NewScanner(c.in)
	c.redraw()
	fmt.Fprintln(c.out, "Type 'help' for commands, 'q' to quit.")
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		done, err := c.exec(fields[0], fields[1:])
		if err != nil {
			fmt.Fprintf(c.out, "%v\n", err)
			continue
		}
		if done {
			return nil
		}
	}
	return scanner.Err()
}

func (c *CLIProcessing) exec(cmd string, args []string) (bool, error) {
	switch cmd {
	case "q", "Q", "quit", "exit":
		fmt.Fprintln(c.out, "Quitting")
		return true, nil
	case "help", "?":
		fmt.Fprintln(c.out, helpText)
	case "show":
		c.redraw()
	case "status":
		c.printStatus()
	case "pieces":
		c.printPieces()
	case "press":
		p, err := points(cmd, args, 1)
		if err != nil {
			return false, err
		}
		if c.builder.Press(p[0].X, p[0].Y) {
			fmt.Fprintf(c.out, "Grabbed %d pieces\n", len(c.selected()))
		} else if _, ok := c.builder.Band(); ok {
			fmt.Fprintln(c.out, "Selecting")
		}
	case "move":
		p, err := points(cmd, args, 1)
		if err != nil {
			return false, err
		}
		c.builder.Move(p[0].X, p[0].Y)
	case "release":
		p, err := points(cmd, args, 1)
		if err != nil {
			return false, err
		}
		return c.release(c.builder.Release(p[0].X, p[0].Y)), nil
	case "drag":
		p, err := points(cmd, args, 2)
		if err != nil {
			return false, err
		}
		c.builder.Press(p[0].X, p[0].Y)
		c.builder.Move(p[1].X, p[1].Y)
		return c.release(c.builder.Release(p[1].X, p[1].Y)), nil
	case "solve":
		return c.release(c.builder.Solve(image.Pt(100, 100))), nil
	default:
		return false, fmt.Errorf("unknown command %q, type 'help'", cmd)
	}
	return false, nil
}

func (c *CLIProcessing) release(status base.GameStatus) bool {
	c.redraw()
	if status == base.Solved {
		fmt.Fprintf(c.out, "Puzzle solved! Time %s\n", src.FormatElapsed(c.builder.Elapsed()))
		return true
	}
	return false
}

func (c *CLIProcessing) redraw() {
	if c.draw != nil {
		c.draw(c.out, c.builder, c.width)
	}
	c.printStatus()
}

func (c *CLIProcessing) printStatus() {
	cur, total := c.builder.Connections()
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "Status: %s\n", c.builder.Status())
	fmt.Fprintf(c.out, "Connections: %d/%d (%.2f%%)\n", cur, total, c.builder.Progress())
	fmt.Fprintf(c.out, "Groups: %d\n", c.builder.Groups())
	fmt.Fprintf(c.out, "Time: %s\n", src.FormatElapsed(c.builder.Elapsed()))
}

func (c *CLIProcessing) printPieces() {
	for _, s := range c.builder.Frame() {
		mark := ""
		if s.Selected {
			mark = " *"
		}
		b := s.Image.Bounds()
		fmt.Fprintf(c.out, "#%d at %d,%d size %dx%d%s\n", s.ID, s.X, s.Y, b.Dx(), b.Dy(), mark)
	}
}

func (c *CLIProcessing) selected() []src.Sprite {
	var out []src.Sprite
	for _, s := range c.builder.Frame() {
		if s.Selected {
			out = append(out, s)
		}
	}
	return out
}

func points(cmd string, args []string, n int) ([]image.Point, error) {
	if len(args) != 2*n {
		if n == 1 {
			return nil, fmt.Errorf("usage: %s x y", cmd)
		}
		return nil, fmt.Errorf("usage: %s x0 y0 x1 y1", cmd)
	}
	out := make([]image.Point, n)
	for i := range out {
		x, err := strconv.Atoi(args[2*i])
		if err != nil {
			return nil, fmt.Errorf("bad x %q: %w", args[2*i], err)
		}
		y, err := strconv.Atoi(args[2*i+1])
		if err != nil {
			return nil, fmt.Errorf("bad y %q: %w", args[2*i+1], err)
		}
		out[i] = image.Pt(x, y)
	}
	return out, nil
}
