// This file is part of k9.
//
// k9 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// k9 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with k9.  If not, see <https://www.gnu.org/licenses/>.

package console

import (
	"github.com/k9engine/k9/curated"
	"github.com/k9engine/k9/paths"
	"github.com/k9engine/k9/prefs"
)

// Preferences for the console.
type Preferences struct {
	con *Console
	dsk *prefs.Disk

	// log the parse trees and bound arguments of every command line
	DebugTrace prefs.Bool

	// number of command lines for which the parse result is remembered
	ParseCacheSize prefs.Int

	// number of submitted command lines kept in the input history
	History prefs.Int

	// number of lines used to display the list of autocomplete candidates
	// when there is no better way of deciding
	CandidateSlots prefs.Int

	// text shown before the input line. terminals add a space after it
	Prompt prefs.String
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// default values for preferences.
const (
	defaultParseCacheSize = 64
	defaultHistory        = 100
	defaultCandidateSlots = 10
	defaultPrompt         = ">"
	maxPromptLen          = 16
)

func newPreferences(con *Console) (*Preferences, error) {
	p := &Preferences{con: con}

	p.ParseCacheSize.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf("console: parse cache size must be at least one")
		}
		return nil
	})
	p.ParseCacheSize.SetHookPost(func(v prefs.Value) error {
		p.con.cache.Resize(v.(int))
		return nil
	})

	p.History.SetHookPost(func(v prefs.Value) error {
		p.con.input.SetHistoryLimit(v.(int))
		return nil
	})

	p.Prompt.SetMaxLen(maxPromptLen)

	err := p.SetDefaults()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() error {
	if err := p.DebugTrace.Set(false); err != nil {
		return err
	}
	if err := p.ParseCacheSize.Set(defaultParseCacheSize); err != nil {
		return err
	}
	if err := p.History.Set(defaultHistory); err != nil {
		return err
	}
	if err := p.CandidateSlots.Set(defaultCandidateSlots); err != nil {
		return err
	}
	return p.Prompt.Set(defaultPrompt)
}

// Load console preferences from the preferences file in the resource
// directory. The file is created if it doesn't exist.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return curated.Errorf("console: %v", err)
		}
		if err := p.attach(pth); err != nil {
			return err
		}
	}
	return p.dsk.Load(true)
}

// LoadFrom is the same as Load() but the location of the preferences file
// is specified.
func (p *Preferences) LoadFrom(path string) error {
	if err := p.attach(path); err != nil {
		return err
	}
	return p.dsk.Load(true)
}

func (p *Preferences) attach(path string) error {
	dsk, err := prefs.NewDisk(path)
	if err != nil {
		return curated.Errorf("console: %v", err)
	}

	err = dsk.Add("console.debugtrace", &p.DebugTrace)
	if err != nil {
		return curated.Errorf("console: %v", err)
	}
	err = dsk.Add("console.parsecache", &p.ParseCacheSize)
	if err != nil {
		return curated.Errorf("console: %v", err)
	}
	err = dsk.Add("console.history", &p.History)
	if err != nil {
		return curated.Errorf("console: %v", err)
	}
	err = dsk.Add("console.candidateslots", &p.CandidateSlots)
	if err != nil {
		return curated.Errorf("console: %v", err)
	}
	err = dsk.Add("console.prompt", &p.Prompt)
	if err != nil {
		return curated.Errorf("console: %v", err)
	}

	p.dsk = dsk
	return nil
}

// Save current console preferences to disk. Does nothing if the preferences
// have never been loaded.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
