package scenario

import "fmt"

// Drawer is anything that can render itself as a line of text.
type Drawer interface {
	Draw() string
}

// Circle is the shape queued by the Shapes scenario.
type Circle struct {
	ID int
}

// Draw implements Drawer.
func (c *Circle) Draw() string {
	return fmt.Sprintf("Drawing Circle %d", c.ID)
}
