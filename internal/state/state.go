package state

import (
	"errors"

	fsutil "github.com/kk-code-lab/qdir/internal/fs"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// ErrNotDirectory is returned when navigation targets a non-directory
// entry. The top level swallows it: pressing enter on a file is normal
// exploratory input, not a failure worth reporting.
var ErrNotDirectory = errors.New("target is not a directory")

// pagingStep is the fixed scroll jump used when the cursor crosses a
// viewport edge. The jump is always 10, independent of the requested
// movement amount.
const pagingStep = 10
