package groups

func pathParam(name, desc string) Param {
	return Param{Name: name, Type: "string", Description: desc, Required: true, In: inPath}
}

func queryParam(name, typ, desc string) Param {
	return Param{Name: name, Type: typ, Description: desc, In: inQuery}
}

func bodyParam(name, typ, desc string) Param {
	return Param{Name: name, Type: typ, Description: desc, In: inBody}
}

func (p Param) required() Param {
	p.Required = true
	return p
}

func (p Param) as(key string) Param {
	p.Key = key
	return p
}

// ofObjects publishes array items as objects instead of strings.
func (p Param) ofObjects() Param {
	p.Items = "object"
	return p
}

func (p Param) oneOf(values ...string) Param {
	p.Enum = values
	return p
}

// locationParam is the locationId argument, defaulted from config.
func locationParam(in string) Param {
	return Param{
		Name:        "locationId",
		Type:        "string",
		Description: "Location (sub-account) ID.",
		Required:    true,
		In:          in,
		Location:    true,
	}
}

// altParams address location-scoped commerce endpoints, which take the
// location as altId plus a constant altType.
func altParams(in string) []Param {
	return []Param{
		locationParam(in).as("altId"),
		{Key: "altType", In: in, Fixed: "location"},
	}
}

func fixed(key, in string, value any) Param {
	return Param{Key: key, In: in, Fixed: value}
}

func pageParams() []Param {
	return []Param{
		queryParam("limit", "number", "Maximum number of results."),
		queryParam("offset", "number", "Number of results to skip."),
	}
}

func with(groups ...[]Param) []Param {
	var out []Param
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// requiring marks the named params as required.
func requiring(params []Param, names ...string) []Param {
	out := make([]Param, len(params))
	for i, p := range params {
		for _, n := range names {
			if p.Name == n {
				p = p.required()
			}
		}
		out[i] = p
	}
	return out
}
