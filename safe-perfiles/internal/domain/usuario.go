package domain

import (
	"strings"
	"time"
)

// Usuario person registered in the platform (table usuario).
// Contrasenia is accepted on input only; the stored bcrypt hash is never serialized.
type Usuario struct {
	IDUsuario        int64     `json:"id_usuario" db:"id_usuario"`
	Run              string    `json:"run" db:"run" validate:"required,max=8,numeric"`
	Dv               string    `json:"dv" db:"dv" validate:"required,len=1"`
	Nombre           string    `json:"nombre" db:"nombre" validate:"required,max=50"`
	APaterno         string    `json:"a_paterno" db:"a_paterno" validate:"required,max=50"`
	AMaterno         string    `json:"a_materno,omitempty" db:"a_materno" validate:"max=50"`
	Telefono         string    `json:"telefono" db:"telefono" validate:"required,telefono"`
	Correo           string    `json:"correo" db:"correo" validate:"required,max=80,email"`
	Contrasenia      string    `json:"contrasenia,omitempty" db:"-" validate:"omitempty,min=8,max=72"`
	PasswordHash     string    `json:"-" db:"contrasenia"`
	FechaRegistro    time.Time `json:"fecha_registro" db:"fecha_registro"`
	IntentosFallidos int       `json:"intentos_fallidos" db:"intentos_fallidos" validate:"gte=0"`
	IDTipoUsuario    int64     `json:"id_tipo_usuario" db:"id_tipo_usuario" validate:"required"`
	IDEstado         int64     `json:"id_estado" db:"id_estado" validate:"required"`
	IDFoto           *int64    `json:"id_foto,omitempty" db:"id_foto"`
}

type UsuarioPatch struct {
	Run              *string `json:"run"`
	Dv               *string `json:"dv"`
	Nombre           *string `json:"nombre"`
	APaterno         *string `json:"a_paterno"`
	AMaterno         *string `json:"a_materno"`
	Telefono         *string `json:"telefono"`
	Correo           *string `json:"correo"`
	Contrasenia      *string `json:"contrasenia"`
	IntentosFallidos *int    `json:"intentos_fallidos"`
	IDTipoUsuario    *int64  `json:"id_tipo_usuario"`
	IDEstado         *int64  `json:"id_estado"`
	IDFoto           *int64  `json:"id_foto"`
}

func (u *Usuario) Normalize() {
	u.Run = strings.TrimLeft(strings.TrimSpace(strings.ReplaceAll(u.Run, ".", "")), "0")
	u.Dv = strings.ToUpper(strings.TrimSpace(u.Dv))
	u.Nombre = strings.TrimSpace(u.Nombre)
	u.APaterno = strings.TrimSpace(u.APaterno)
	u.AMaterno = strings.TrimSpace(u.AMaterno)
	u.Telefono = strings.TrimSpace(u.Telefono)
	u.Correo = strings.ToLower(strings.TrimSpace(u.Correo))
}

func (p UsuarioPatch) Apply(e *Usuario) {
	if p.Run != nil {
		e.Run = *p.Run
	}
	if p.Dv != nil {
		e.Dv = *p.Dv
	}
	if p.Nombre != nil {
		e.Nombre = *p.Nombre
	}
	if p.APaterno != nil {
		e.APaterno = *p.APaterno
	}
	if p.AMaterno != nil {
		e.AMaterno = *p.AMaterno
	}
	if p.Telefono != nil {
		e.Telefono = *p.Telefono
	}
	if p.Correo != nil {
		e.Correo = *p.Correo
	}
	if p.Contrasenia != nil {
		e.Contrasenia = *p.Contrasenia
	}
	if p.IntentosFallidos != nil {
		e.IntentosFallidos = *p.IntentosFallidos
	}
	if p.IDTipoUsuario != nil {
		e.IDTipoUsuario = *p.IDTipoUsuario
	}
	if p.IDEstado != nil {
		e.IDEstado = *p.IDEstado
	}
	if p.IDFoto != nil {
		e.IDFoto = p.IDFoto
	}
}

// DigitoVerificador computes the módulo 11 check digit of a RUN ("0"-"9" or "K")
func DigitoVerificador(run string) string {
	sum, factor := 0, 2
	for i := len(run) - 1; i >= 0; i-- {
		sum += int(run[i]-'0') * factor
		factor++
		if factor > 7 {
			factor = 2
		}
	}
	switch r := 11 - sum%11; r {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return string(rune('0' + r))
	}
}

// RunValido reports whether dv matches the RUN; both must already be normalized
func RunValido(run, dv string) bool {
	if run == "" {
		return false
	}
	for _, c := range run {
		if c < '0' || c > '9' {
			return false
		}
	}
	return DigitoVerificador(run) == dv
}
