package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/earthboundkid/versioninfo/v2"
	"github.com/spf13/pflag"

	"github.com/slingdata-io/ltdl/buildcfg"
)

// addVersionFlag adds -v and -version flags to the FlagSet. If
// triggered, the flags print version and target information and call
// os.Exit(0).
func addVersionFlag(f *pflag.FlagSet) {
	flag := f.VarPF(boolFunc(printVersion), "version", "v", "print version information and exit")
	flag.DefValue = "false"
	flag.NoOptDefVal = "true"
}

func printVersion(b bool) error {
	if !b {
		return nil
	}
	fmt.Println("Version:", versioninfo.Version)
	fmt.Println("Revision:", versioninfo.Revision)
	if versioninfo.Revision != "unknown" {
		fmt.Println("Committed:", versioninfo.LastCommit.Format(time.RFC1123))
		if versioninfo.DirtyBuild {
			fmt.Println("Dirty Build")
		}
	}
	p := buildcfg.Capabilities()
	fmt.Printf("Target: %s, %d-byte long, %s modules\n", p.OS, p.SizeofLongInt, p.SharedLibExt)
	os.Exit(0)
	panic("unreachable")
}

type boolFunc func(bool) error

func (f boolFunc) IsBoolFlag() bool { return true }
func (f boolFunc) String() string   { return "" }
func (f boolFunc) Type() string     { return "bool" }

func (f boolFunc) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	return f(b)
}
