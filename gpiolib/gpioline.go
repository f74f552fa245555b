package gpiolib

import "github.com/google/uuid"

type line struct {
	chip  Chip
	bit   uint32
	token uuid.UUID
}

// Lines is a set of reserved GPIO lines, released with Close
type Lines struct {
	lines []line
}

func (s *Subsystem) OpenLine(label string, flags RequestFlag, req LineRequest) (*Lines, error) {
	return s.OpenLines(label, flags, []LineRequest{req})
}

// OpenLines reserves all requested pins under one consumer label and sets
// their direction. Either all pins are reserved or none is.
func (s *Subsystem) OpenLines(label string, flags RequestFlag, lines []LineRequest) (*Lines, error) {
	if len(lines) > maxLines || len(lines) == 0 {
		return nil, ErrorInvalidLines
	}

	gl := &Lines{}
	for _, l := range lines {
		c, bit, err := s.lookup(l.Pin)
		if err == nil {
			var token uuid.UUID
			token, err = c.Ops.Request(bit, label)
			if err == nil {
				gl.lines = append(gl.lines, line{chip: c, bit: bit, token: token})
				continue
			}
		}

		gl.Close()
		return nil, err
	}

	for i, l := range gl.lines {
		if flags&RequestOutput != 0 {
			l.chip.Ops.Output(l.bit, lines[i].DefaultValue)
		} else if flags&RequestInput != 0 {
			l.chip.Ops.DirectionInput(l.bit)
		}
	}

	return gl, nil
}

func (gl *Lines) Close() error {
	var err error
	for _, l := range gl.lines {
		err2 := l.chip.Ops.Free(l.bit, l.token)
		if err == nil {
			err = err2
		}
	}
	gl.lines = nil
	return err
}

func (gl *Lines) SetValues(values []bool) error {
	if len(values) > len(gl.lines) {
		return ErrorLineIndex
	}

	for i, b := range values {
		gl.lines[i].chip.Ops.Set(gl.lines[i].bit, b)
	}
	return nil
}

func (gl *Lines) GetValues() ([]bool, error) {
	output := make([]bool, len(gl.lines))
	for i, l := range gl.lines {
		output[i] = l.chip.Ops.Get(l.bit)
	}
	return output, nil
}

func (gl *Lines) SetValue(value bool) error {
	return gl.SetValues([]bool{value})
}

func (gl *Lines) GetValue() (bool, error) {
	output, err := gl.GetValues()
	if len(output) == 0 || err != nil {
		return false, err
	}

	return output[0], err
}
