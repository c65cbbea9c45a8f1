package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// intFlag records whether an int flag was explicitly passed so that an
// explicit zero is distinguishable from "not set".
type intFlag struct {
	value int
	set   bool
}

func (f *intFlag) String() string {
	if f == nil || !f.set {
		return ""
	}
	return strconv.Itoa(f.value)
}

func (f *intFlag) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	f.value = v
	f.set = true
	return nil
}

func (f *intFlag) ptr() *int {
	if !f.set {
		return nil
	}
	v := f.value
	return &v
}

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-o directory exported files are written into
//	-product product name prefixing exported file names
//	-version application version
//	-escape escape reserved characters inside payload values
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-size content size of the code in pixels
//	-level error-correction level: L, M, Q or H
//	-style start with the style enabled
//	-line-color code foreground color
//	-border-color frame color
//	-padding quiet zone around the code in pixels
//	-border-thickness frame thickness in pixels
//	-border-radius frame corner radius in pixels
func ParseFlags() *StructuredConfig {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) *StructuredConfig {
	var serverAddress NetAddress
	var jsonConfigPath string
	var outputDir string
	var productName string
	var version string
	var escapeReserved bool
	var requestTimeout time.Duration
	var contentSize int
	var recoveryLevel string
	var styleEnabled bool
	var lineColor, borderColor string
	var padding intFlag
	var borderThickness, borderRadius int

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&outputDir, "o", "", "Directory exported files are written into")
	fs.StringVar(&productName, "product", "", "Product name used as exported file name prefix")
	fs.StringVar(&version, "version", "", "Application version")
	fs.BoolVar(&escapeReserved, "escape", false, "Escape reserved characters inside payload values")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&contentSize, "size", 0, "Content size of the code in pixels")
	fs.StringVar(&recoveryLevel, "level", "", "Error-correction level: L, M, Q or H")
	fs.BoolVar(&styleEnabled, "style", false, "Start with the style enabled")
	fs.StringVar(&lineColor, "line-color", "", "Code foreground color (#rrggbb)")
	fs.StringVar(&borderColor, "border-color", "", "Frame color (#rrggbb)")
	fs.Var(&padding, "padding", "Quiet zone around the code in pixels")
	fs.IntVar(&borderThickness, "border-thickness", 0, "Frame thickness in pixels")
	fs.IntVar(&borderRadius, "border-radius", 0, "Frame corner radius in pixels")

	// with flag.ContinueOnError the values parsed so far are kept
	_ = fs.Parse(args)

	return &StructuredConfig{
		App: App{
			ProductName:    productName,
			Version:        version,
			EscapeReserved: escapeReserved,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Export: Export{
			OutputDir:     outputDir,
			ContentSize:   contentSize,
			RecoveryLevel: recoveryLevel,
		},
		Style: Style{
			Enabled:         styleEnabled,
			LineColor:       lineColor,
			BorderColor:     borderColor,
			Padding:         padding.ptr(),
			BorderThickness: borderThickness,
			BorderRadius:    borderRadius,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
