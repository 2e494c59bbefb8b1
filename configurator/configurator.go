package configurator

import (
	"fmt"
	"github.com/spf13/viper"
)

const (
	CfgFormatIntegerDigits string = "format.IntegerDigits"
	CfgFormatDecimalDigits string = "format.DecimalDigits"
	CfgFormatUnit          string = "format.Unit"

	CfgOutputFile string = "output.File"

	CfgSoftwareVendor      string = "software.Vendor"
	CfgSoftwareApplication string = "software.Application"
	CfgSoftwareVersion     string = "software.Version"
)

func SetDefaults(v *viper.Viper) {
	v.SetConfigName("gerbergen") // no need to include file extension
	v.AddConfigPath(".")         // set the path of your config file
	v.SetConfigType("toml")

	// coordinate format and units
	v.SetDefault(CfgFormatIntegerDigits, 2)
	v.SetDefault(CfgFormatDecimalDigits, 6)
	v.SetDefault(CfgFormatUnit, "mm")

	//
	v.SetDefault(CfgOutputFile, "")

	//
	v.SetDefault(CfgSoftwareVendor, "MakerPnP")
	v.SetDefault(CfgSoftwareApplication, "gerbergen")
	v.SetDefault(CfgSoftwareVersion, "")
}

func ProcessConfigFile(v *viper.Viper) error {
	return v.ReadInConfig()
}

func DiagnosticAllCfgPrint(v *viper.Viper) {
	c := v.AllSettings()
	for key, data := range c {
		fmt.Println(key, ":", data)
	}
	fmt.Println()
}
