package registry

import (
	tkmpb "github.com/anpopa/taskmonitor/proto"
)

// ContextEntry aggregates per-container totals over every ProcEntry that
// shares its PID namespace. It is created when the first matching process
// appears and removed by the context refresh that finds it empty.
type ContextEntry struct {
	info *tkmpb.ContextInfo
}

func newContextEntry(ctxID uint64, ctxName string) *ContextEntry {
	return &ContextEntry{info: &tkmpb.ContextInfo{CtxId: ctxID, CtxName: ctxName}}
}

func (c *ContextEntry) ContextID() uint64         { return c.info.CtxId }
func (c *ContextEntry) Info() *tkmpb.ContextInfo  { return c.info }

func (c *ContextEntry) resetData() {
	c.info.TotalCpuTime = 0
	c.info.TotalCpuPercent = 0
	c.info.TotalMemVmrss = 0
}

func (c *ContextEntry) addProc(info *tkmpb.ProcInfo) {
	c.info.TotalCpuTime += info.GetCpuTime()
	c.info.TotalCpuPercent += info.GetCpuPercent()
	c.info.TotalMemVmrss += info.GetMemVmrss()
}
