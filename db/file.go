package db

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/jsphweid/synchro/chart"
	"github.com/jsphweid/synchro/model"
)

// FileLibrary keeps each chart at <dir>/<name>/<name>.json, next to where
// the song's audio and cover live on the device site.
type FileLibrary struct {
	dir string
}

func NewFileLibrary(dir string) (*FileLibrary, error) {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return nil, fault.Wrap(err, fmsg.With(fmt.Sprintf("could not create chart dir %s", dir)))
	}
	return &FileLibrary{dir: dir}, nil
}

func (l *FileLibrary) path(name string) string {
	return filepath.Join(l.dir, name, name+".json")
}

func (l *FileLibrary) Save(name string, c model.Chart) error {
	if !validName(name) {
		return fault.New("bad chart name "+name, fmsg.WithDesc("bad chart name", fmt.Sprintf("%q is not a valid chart name.", name)), ftag.With(ftag.InvalidArgument))
	}
	b, err := chart.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(l.dir, name), 0777); err != nil {
		return fault.Wrap(err, fmsg.With("could not create chart folder"))
	}
	// readers never see a partially written chart
	tmp := l.path(name) + ".tmp"
	if err := os.WriteFile(tmp, b, 0666); err != nil {
		return fault.Wrap(err, fmsg.With("write failed for chart "+name))
	}
	if err := os.Rename(tmp, l.path(name)); err != nil {
		return fault.Wrap(err, fmsg.With("could not replace chart "+name))
	}
	return nil
}

func (l *FileLibrary) Get(name string) (model.Chart, error) {
	if !validName(name) {
		return model.Chart{}, fault.New("bad chart name "+name, fmsg.WithDesc("bad chart name", fmt.Sprintf("%q is not a valid chart name.", name)), ftag.With(ftag.InvalidArgument))
	}
	f, err := os.Open(l.path(name))
	if os.IsNotExist(err) {
		return model.Chart{}, fault.Wrap(err, fmsg.WithDesc("chart not found", fmt.Sprintf("No chart named %q.", name)), ftag.With(ftag.NotFound))
	}
	if err != nil {
		return model.Chart{}, fault.Wrap(err, fmsg.With("could not open chart "+name))
	}
	defer f.Close()
	return chart.Decode(f)
}

func (l *FileLibrary) List() ([]model.ChartSummary, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fault.Wrap(err, fmsg.With("could not read chart dir"))
	}

	res := make([]model.ChartSummary, 0)
	for _, entry := range entries {
		if !entry.IsDir() || !validName(entry.Name()) {
			continue
		}
		c, err := l.Get(entry.Name())
		if err != nil {
			// folders without a readable chart are audio-only songs
			continue
		}
		res = append(res, c.Summary(entry.Name()))
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Name < res[j].Name
	})
	return res, nil
}
