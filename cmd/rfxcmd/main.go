package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/barnybug/rfxcmd/config"
	"github.com/barnybug/rfxcmd/services"
	"github.com/barnybug/rfxcmd/services/api"
	"github.com/barnybug/rfxcmd/services/datalogger"
	"github.com/barnybug/rfxcmd/services/graphite"
	"github.com/barnybug/rfxcmd/services/listener"
	"github.com/barnybug/rfxcmd/services/mqtt"
	"github.com/barnybug/rfxcmd/services/rfxtrx"
	"github.com/barnybug/rfxcmd/services/rrd"
	"github.com/barnybug/rfxcmd/services/trigger"
	"github.com/barnybug/rfxcmd/services/weewx"
	"github.com/barnybug/rfxcmd/services/xpl"
	"github.com/pkg/errors"
)

var (
	format     = flag.String("format", "text", "output format: text, xml or json")
	baro       = flag.Int("baro", 0, "barometric offset in hPa, overrides config")
	configFile = flag.String("config", "", "config file (default ~/.config/rfxcmd/rfxcmd.yml)")
)

func registerServices() {
	// register available services
	services.Register(&api.Service{})
	services.Register(&datalogger.Service{})
	services.Register(&graphite.Service{})
	services.Register(&listener.Service{})
	services.Register(&mqtt.Service{})
	services.Register(&rfxtrx.Service{})
	services.Register(&rrd.Service{})
	services.Register(&trigger.Service{})
	services.Register(&weewx.Service{})
	services.Register(&xpl.Service{})
}

func usage() {
	fmt.Println("Usage: rfxcmd [options] COMMAND [ARGS]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("   decode    [hex...]      Decode frames, from stdin if none given")
	fmt.Println("   protocols file          Print the set mode command for a protocol file")
	fmt.Println("   run       [service...]  Run services, default from config")
	fmt.Println("   send      hex           Send a frame to the transceiver")
	fmt.Println("   status                  Get the transceiver status")
	fmt.Println("   services                List services")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
}

func fmtFatalf(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format, a...)
	os.Exit(1)
}

func loadConfig() *config.Config {
	var conf *config.Config
	var err error
	if *configFile != "" {
		var f *os.File
		f, err = os.Open(*configFile)
		if err == nil {
			defer f.Close()
			conf, err = config.OpenReader(f)
		}
	} else {
		conf, err = config.Open()
		if os.IsNotExist(errors.Cause(err)) {
			// no config: defaults
			conf, err = config.OpenRaw(nil)
		}
	}
	if err != nil {
		fmtFatalf("error: %s\n", err)
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "baro" {
			conf.Decoder.Barometric_Offset = *baro
		}
	})
	return conf
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	ps := flag.Args()[1:]

	command := flag.Args()[0]
	switch command {
	default:
		usage()
		os.Exit(1)
	case "decode":
		conf := loadConfig()
		if err := decode(ps, *format, conf.DecoderConfig(), os.Stdin, os.Stdout); err != nil {
			fmtFatalf("error: %s\n", err)
		}
	case "protocols":
		if len(ps) != 1 {
			usage()
			os.Exit(1)
		}
		if err := protocols(ps[0], os.Stdout); err != nil {
			fmtFatalf("error: %s\n", err)
		}
	case "send":
		if len(ps) != 1 {
			usage()
			os.Exit(1)
		}
		if err := send(loadConfig(), ps[0], os.Stdout); err != nil {
			fmtFatalf("error: %s\n", err)
		}
	case "status":
		if err := status(loadConfig(), os.Stdout); err != nil {
			fmtFatalf("error: %s\n", err)
		}
	case "services":
		registerServices()
		for _, name := range services.Names() {
			fmt.Println(name)
		}
	case "run":
		service(loadConfig(), ps)
	}
}

// Start services
func service(conf *config.Config, ss []string) {
	services.SetupLogging()
	services.Setup(conf)
	registerServices()
	if len(ss) == 0 {
		ss = conf.Services
	}
	if err := services.Launch(ss); err != nil {
		log.Fatalln(err)
	}
}
