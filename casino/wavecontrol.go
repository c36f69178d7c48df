package casino

import (
	"fmt"

	"raycasino/world"
)

// WaveControl starts the next wave on demand. It is free.
type WaveControl struct {
	reg *Registry
	ts  *world.TableSession
}

func describeWave(ts *world.TableSession) string {
	switch {
	case ts.WaveReady():
		return fmt.Sprintf("Start Wave %d", ts.Wave()+1)
	case ts.WaveInProgress():
		return fmt.Sprintf("Wave %d in progress", ts.Wave())
	}
	return "Clear enemies first"
}

func (w *WaveControl) Handle(a world.TableAction) world.Result {
	if a != world.ActionPlay {
		return world.Result{}
	}
	if !w.ts.StartNextWave() {
		return world.Result{Kind: world.ResultError, Message: describeWave(w.ts)}
	}
	msg := fmt.Sprintf("Wave %d started!", w.ts.Wave())
	w.ts.Close()
	return world.Result{Kind: world.ResultInfo, Message: msg}
}

func (w *WaveControl) Lines() []string {
	return append(w.reg.header(w.ts), "Enter: Start  "+hintClose)
}
