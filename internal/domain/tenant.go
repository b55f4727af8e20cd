package domain

// TenantContext identifica la sede sobre la que opera una petición.
// Se pasa explícitamente a cada caso de uso; ningún componente lee el
// tenant de estado ambiente.
type TenantContext struct {
	SiteID string
}
