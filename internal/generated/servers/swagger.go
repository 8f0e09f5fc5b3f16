package servers

import (
	"encoding/json"
	"sync"

	"github.com/swaggo/swag"
)

// swaggerDoc serves the embedded document to echo-swagger as JSON.
type swaggerDoc struct {
	once sync.Once
	doc  string
}

func (d *swaggerDoc) ReadDoc() string {
	d.once.Do(func() {
		spec, err := GetSwagger()
		if err != nil {
			d.doc = "{}"
			return
		}
		raw, err := json.Marshal(spec)
		if err != nil {
			d.doc = "{}"
			return
		}
		d.doc = string(raw)
	})
	return d.doc
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
