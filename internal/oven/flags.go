package oven

// FlagOven keeps the oven as independent fields instead of a tagged state.
// Every mutator has to re-establish the interlock by hand, which is what
// makes this layout easy to get wrong; it is kept as a conformance target.
type FlagOven struct {
	doorOpen bool
	heating  bool
	time     uint
}

var _ Contract = (*FlagOven)(nil)

func NewFlagOven() *FlagOven { return &FlagOven{} }

func (f *FlagOven) Reset() { *f = FlagOven{} }

func (f *FlagOven) Tick() {
	if !f.heating {
		return
	}
	if f.time > 0 {
		f.time--
	}
	if f.time == 0 {
		f.heating = false
	}
}

func (f *FlagOven) MagnetronEnabled() bool { return f.heating }
func (f *FlagOven) DoorOpen() bool         { return f.doorOpen }
func (f *FlagOven) TimeRemain() uint       { return f.time }

func (f *FlagOven) ActionOpenDoor() {
	f.doorOpen = true
	f.heating = false
}

func (f *FlagOven) ActionCloseDoor() { f.doorOpen = false }

func (f *FlagOven) ActionSetTime(seconds uint) {
	if !f.heating {
		f.time = seconds
	}
}

func (f *FlagOven) ActionStart() {
	if f.doorOpen {
		return
	}
	if f.heating {
		f.time = addSaturating(f.time, DefaultCookSeconds)
		return
	}
	f.heating = true
	if f.time == 0 {
		f.time = DefaultCookSeconds
	}
}

func (f *FlagOven) ActionStop() {
	if f.heating {
		f.heating = false
		return
	}
	f.time = 0
}
