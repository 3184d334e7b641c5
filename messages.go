package glint

import (
	"time"

	"github.com/glintui/glint/toast"
)

// PresentMsg inserts a toast on the stage that receives it. Present and
// Show produce these; hosts only need to route them through Update.
type PresentMsg struct {
	ID     int64
	Config toast.Config
}

// DismissMsg begins the exit of the identified toast. Unknown or
// already-leaving IDs are ignored.
type DismissMsg struct {
	ID int64
}

// frameMsg advances every live instance by the wall-clock time elapsed
// since the previous frame.
type frameMsg time.Time

// forceRemoveMsg is the per-toast fallback: if the instance is still
// around this long after its deadline, it is removed without finishing
// its exit animation.
type forceRemoveMsg struct {
	id int64
}
