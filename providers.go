package formats

import (
	"github.com/0xalexb/hjarta-formats/config/provider"
	jsonprovider "github.com/0xalexb/hjarta-formats/config/provider/json"
	propertiesprovider "github.com/0xalexb/hjarta-formats/config/provider/properties"
	tomlprovider "github.com/0xalexb/hjarta-formats/config/provider/toml"
	yamlprovider "github.com/0xalexb/hjarta-formats/config/provider/yaml"

	"go.uber.org/fx"
)

// ProvidersGroup is the Fx value group collected into the registry.
const ProvidersGroup = "config_providers"

// BundledProviders returns fresh instances of the providers shipped with the
// module: JSON and properties on their built-in tiers, YAML and TOML on the
// custom tier.
func BundledProviders() []provider.Provider {
	return []provider.Provider{
		jsonprovider.New(),
		propertiesprovider.New(),
		yamlprovider.New(),
		tomlprovider.New(),
	}
}

// AsProvider annotates a constructor so that its result joins the
// config_providers group as a provider.Provider.
//
//	formats.NewApp(formats.WithModules(formats.AsProvider(hocon.New)))
func AsProvider(constructor any) fx.Option {
	return fx.Provide(
		fx.Annotate(
			constructor,
			fx.As(new(provider.Provider)),
			fx.ResultTags(`group:"`+ProvidersGroup+`"`),
		),
	)
}
