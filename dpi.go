// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package pal

// SetDPIAware tells the OS the process renders at native resolution so windows
// are not bitmap-scaled. Only Windows needs this; elsewhere it does nothing.
func SetDPIAware() {
	setDPIAware()
}
