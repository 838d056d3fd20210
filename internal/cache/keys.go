package cache

// OrgDisplayIDKey arma la key de la organización cacheada por display id.
// La usan tanto la lectura caliente del login como la invalidación en
// updates/deletes de organizaciones.
func OrgDisplayIDKey(displayID string) string {
	return "org:displayid:" + displayID
}

// ProfileFeaturesKey arma la key del set de features de un perfil.
func ProfileFeaturesKey(profileID string) string {
	return "profile:features:" + profileID
}
