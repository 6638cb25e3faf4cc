package entity

import "time"

// DatosEmpresa representa el registro único de la agencia: domicilio fiscal y RFC.
// Se espera a lo más un registro por despliegue; la unicidad no está garantizada
// por la tabla, el seed verifica existencia antes de crear.
type DatosEmpresa struct {
	ID            string
	NombreEmpresa string
	RazonSocial   string
	RFC           string
	Calle         string
	Numero        string
	Colonia       string
	Delegacion    string
	CodigoPostal  string
	Ciudad        string
	Estado        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
