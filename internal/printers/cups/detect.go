package cups

import "github.com/dannyphamv/labelpress/pkg/executil"

// Detect reports whether the CUPS command line tools are present. The
// probe runs once at startup; callers branch on the capability flag
// rather than re-checking per submission.
func Detect(lpPath, lpstatPath string, exec executil.Executor) bool {
	if _, err := exec.LookPath(lpPath); err != nil {
		return false
	}
	if _, err := exec.LookPath(lpstatPath); err != nil {
		return false
	}
	return true
}
