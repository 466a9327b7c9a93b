package system

import (
	"os"
	"runtime"

	"golang.org/x/sys/unix"

	"ciftify/internal/report"
)

// Info renders the host identity report: OS, hostname, kernel release and
// version, and machine architecture. It never fails; fields that cannot
// be read are reported as "unknown".
func Info() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		Logger.Warn("uname failed, reporting runtime identity", "err", err)
		hostname, _ := os.Hostname()
		return infoBlock(runtime.GOOS, hostname, "", "", runtime.GOARCH)
	}
	return infoBlock(
		unix.ByteSliceToString(uts.Sysname[:]),
		unix.ByteSliceToString(uts.Nodename[:]),
		unix.ByteSliceToString(uts.Release[:]),
		unix.ByteSliceToString(uts.Version[:]),
		unix.ByteSliceToString(uts.Machine[:]),
	)
}

func infoBlock(osName, hostname, release, version, machine string) string {
	return report.Block("System Info",
		"OS: "+orUnknown(osName),
		"Hostname: "+orUnknown(hostname),
		"Release: "+orUnknown(release),
		"Version: "+orUnknown(version),
		"Machine: "+orUnknown(machine),
	)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
