package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fault.Wrap(err, fmsg.With(fmt.Sprintf("could not open midi file %s", filepath)))
	}
	defer f.Close()
	return Read(f)
}

func Read(r io.Reader) (s *smf.SMF, e error) {
	// smf can panic on truncated input
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			s = nil
			e = fault.New(fmt.Sprint(rec), fmsg.WithDesc("midi parser panicked", "The MIDI file is corrupt."), ftag.With(ftag.InvalidArgument))
		}
	}()

	dat, err := io.ReadAll(r)
	if err != nil {
		return nil, fault.Wrap(err, fmsg.With("error reading midi file"))
	}
	if len(dat) == 0 {
		return nil, fault.Wrap(errors.New("empty midi file"), fmsg.WithDesc("error parsing midi file", "The MIDI file is empty."), ftag.With(ftag.InvalidArgument))
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fault.Wrap(err, fmsg.WithDesc("error parsing midi file", "The file is not a Standard MIDI File."), ftag.With(ftag.InvalidArgument))
	}
	return res, nil
}
