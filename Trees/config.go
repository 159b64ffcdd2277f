package Trees

import "github.com/sirupsen/logrus"

// Config of a BST. The zero value is usable.
type Config struct {
	//StackCap bounds the stack used by iterative walks. A walk that needs
	//more fails with Stacks.StackFullError. 0 sizes the stack to the tree.
	StackCap uint
	//QueueCap is the initial capacity of the queue used by level order walks.
	QueueCap uint
	//Debug runs Corrupt after every mutation and panics if it reports true.
	Debug bool
	Log   *logrus.Entry
}

func (c *Config) withDefaults() Config {
	var r Config
	if c != nil {
		r = *c
	}
	if r.Log == nil {
		r.Log = logrus.NewEntry(logrus.StandardLogger()).WithField("pkg", "Trees")
	}
	return r
}
