package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// procfs readers. Every function takes the proc mount root so tests can
// point the registry at a fixture tree. A process vanishing mid-read is an
// expected race on a live system; callers treat these errors as "skip".

// readProcName returns the first whitespace separated token after "Name:"
// in /proc/<pid>/status.
func readProcName(procRoot string, pid int) (string, error) {
	raw, err := os.ReadFile(filepath.Join(procRoot, strconv.Itoa(pid), "status"))
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(string(raw), "\n") {
		if !strings.HasPrefix(line, "Name:") {
			continue
		}
		fields := strings.Fields(strings.TrimPrefix(line, "Name:"))
		if len(fields) == 0 {
			break
		}
		return fields[0], nil
	}
	return "", fmt.Errorf("registry: no name in status for pid %d", pid)
}

// readContextID resolves the inode of the process's PID namespace from the
// /proc/<pid>/ns/pid symlink, formatted by the kernel as "pid:[<inode>]".
func readContextID(procRoot string, pid int) (uint64, error) {
	link, err := os.Readlink(filepath.Join(procRoot, strconv.Itoa(pid), "ns", "pid"))
	if err != nil {
		return 0, err
	}
	start := strings.IndexByte(link, '[')
	end := strings.IndexByte(link, ']')
	if start < 0 || end <= start+1 {
		return 0, fmt.Errorf("registry: malformed ns link %q", link)
	}
	return strconv.ParseUint(link[start+1:end], 10, 64)
}

// procStatSample is the subset of /proc/<pid>/stat the registry samples.
type procStatSample struct {
	ppid  int
	utime uint64
	stime uint64
}

// readProcStat parses /proc/<pid>/stat. The comm field may contain spaces
// and parentheses, so parsing restarts after the last ')'.
func readProcStat(procRoot string, pid int) (procStatSample, error) {
	var sample procStatSample
	raw, err := os.ReadFile(filepath.Join(procRoot, strconv.Itoa(pid), "stat"))
	if err != nil {
		return sample, err
	}
	text := string(raw)
	end := strings.LastIndexByte(text, ')')
	if end < 0 || end+2 > len(text) {
		return sample, fmt.Errorf("registry: malformed stat for pid %d", pid)
	}
	fields := strings.Fields(text[end+2:])
	// After comm: state(0) ppid(1) ... utime(11) stime(12).
	if len(fields) < 13 {
		return sample, fmt.Errorf("registry: short stat for pid %d", pid)
	}
	sample.ppid, err = strconv.Atoi(fields[1])
	if err != nil {
		return sample, err
	}
	sample.utime, err = strconv.ParseUint(fields[11], 10, 64)
	if err != nil {
		return sample, err
	}
	sample.stime, err = strconv.ParseUint(fields[12], 10, 64)
	if err != nil {
		return sample, err
	}
	return sample, nil
}

// procMemSample holds /proc/<pid>/statm derived sizes in kibibytes.
type procMemSample struct {
	vmSize uint64
	vmRSS  uint64
}

func readProcStatm(procRoot string, pid int, pageSizeKB uint64) (procMemSample, error) {
	var sample procMemSample
	raw, err := os.ReadFile(filepath.Join(procRoot, strconv.Itoa(pid), "statm"))
	if err != nil {
		return sample, err
	}
	fields := strings.Fields(string(raw))
	if len(fields) < 2 {
		return sample, fmt.Errorf("registry: short statm for pid %d", pid)
	}
	size, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return sample, err
	}
	resident, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return sample, err
	}
	sample.vmSize = size * pageSizeKB
	sample.vmRSS = resident * pageSizeKB
	return sample, nil
}
