package tui

// The three frames cycled by the animation: facing forward, leaning left,
// leaning right. Every frame has the same number of lines.
var defaultFrames = []string{
	`
     .-"""-.
    /  o o  \
   |    ^    |
   |  '---'  |
    \       /
     '-._.-'
      /| |\
     / | | \
       / \
      /   \`,
	`
   .-"""-.
  / o o   \
 |  ^      |
 | '---'   |
  \       /
   '-._.-'
    /| |\
   / | |  \
     / \
    /   \`,
	`
       .-"""-.
      /   o o \
     |      ^  |
     |   '---' |
      \       /
       '-._.-'
        /| |\
      /  | | \
         / \
        /   \`,
}

// DefaultFrames returns a copy of the built-in frames.
func DefaultFrames() []string {
	out := make([]string, len(defaultFrames))
	copy(out, defaultFrames)
	return out
}
