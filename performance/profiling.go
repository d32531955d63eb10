// This file is part of Postfx.
//
// Postfx is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Postfx is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Postfx.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/jetsetilly/postfx/curated"
)

// ProfileError is the pattern of errors returned by RunProfiler().
const ProfileError = "performance: %v"

// RunProfiler runs the supplied function. A CPU profile is written to cpuFile
// for the duration of the function. A heap profile is written to memFile
// after the function has returned. An empty filename disables that profile.
func RunProfiler(cpuFile string, memFile string, run func() error) error {
	if cpuFile != "" {
		f, err := os.Create(cpuFile)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer pprof.StopCPUProfile()
	}

	err := run()
	if err != nil {
		return err
	}

	return memProfile(memFile)
}

func memProfile(memFile string) error {
	if memFile == "" {
		return nil
	}

	f, err := os.Create(memFile)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}

	runtime.GC()
	err = pprof.WriteHeapProfile(f)
	if err != nil {
		_ = f.Close()
		return curated.Errorf(ProfileError, err)
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}

	return nil
}
