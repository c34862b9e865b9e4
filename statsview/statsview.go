// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address is the default address of the stats server.
const Address = "localhost:12600"

const url = "/debug/statsview"

// URL returns the full address of the charts page for the server address.
func URL(addr string) string {
	return fmt.Sprintf("http://%s%s", addr, url)
}

// Launch the stats server at the address. An empty address means the default
// Address. The returned function stops the server.
func Launch(output io.Writer, addr string) (stop func()) {
	if addr == "" {
		addr = Address
	}

	viewer.SetConfiguration(viewer.WithAddr(addr))
	mgr := statsview.New()

	go func() {
		// Start() blocks until the server is stopped
		mgr.Start()
	}()

	if output != nil {
		fmt.Fprintf(output, "stats server available at %s\n", URL(addr))
	}

	return mgr.Stop
}
