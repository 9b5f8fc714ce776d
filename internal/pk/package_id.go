package pk

import "strings"

// PackageIDDelim separates the fields of a package id.
const PackageIDDelim = ";"

// PackageID identifies a package as name, version, arch and data origin.
type PackageID struct {
	Name    string
	Version string
	Arch    string
	Data    string
}

// NewPackageID returns the id for name and version with empty arch and data fields.
func NewPackageID(name string, version string) PackageID {
	return PackageID{Name: name, Version: version}
}

// String renders the id as "name;version;arch;data".
func (id PackageID) String() string {
	return strings.Join([]string{id.Name, id.Version, id.Arch, id.Data}, PackageIDDelim)
}

// Valid reports whether the id can be sent to the daemon unchanged.
// The name must be set and no field may contain the delimiter or a line break.
func (id PackageID) Valid() bool {
	if id.Name == "" {
		return false
	}
	for _, field := range []string{id.Name, id.Version, id.Arch, id.Data} {
		if strings.ContainsAny(field, PackageIDDelim+"\t\r\n") {
			return false
		}
	}
	return true
}
