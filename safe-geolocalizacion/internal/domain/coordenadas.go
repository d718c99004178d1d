package domain

// Coordenadas WGS84 point (table geolocalizacion)
type Coordenadas struct {
	IDGeolocalizacion int64   `json:"id_geolocalizacion" db:"id_geolocalizacion"`
	Latitud           float64 `json:"latitud" db:"latitud" validate:"gte=-90,lte=90"`
	Longitud          float64 `json:"longitud" db:"longitud" validate:"gte=-180,lte=180"`
}

type CoordenadasPatch struct {
	Latitud  *float64 `json:"latitud"`
	Longitud *float64 `json:"longitud"`
}

func (p CoordenadasPatch) Apply(e *Coordenadas) {
	if p.Latitud != nil {
		e.Latitud = *p.Latitud
	}
	if p.Longitud != nil {
		e.Longitud = *p.Longitud
	}
}
