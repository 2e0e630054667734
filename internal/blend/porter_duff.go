package blend

// sourceOver composites source over destination (default blend mode).
// Formula: S + D * (1 - Sa)
func sourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addDiv255(sr, mulDiv255(dr, invSa)),
		addDiv255(sg, mulDiv255(dg, invSa)),
		addDiv255(sb, mulDiv255(db, invSa)),
		addDiv255(sa, mulDiv255(da, invSa))
}

// sourceAtop composites source over destination, preserving destination alpha.
// Formula: S * Da + D * (1 - Sa)
func sourceAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addDiv255(mulDiv255(sr, da), mulDiv255(dr, invSa)),
		addDiv255(mulDiv255(sg, da), mulDiv255(dg, invSa)),
		addDiv255(mulDiv255(sb, da), mulDiv255(db, invSa)),
		da
}

// multiply is the separable multiply mode written directly in premultiplied form.
// Formula: S * (1 - Da) + D * (1 - Sa) + S * D
// Alpha:   Sa + Da * (1 - Sa)
func multiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	invDa := 255 - da
	return multiplyChannel(sr, dr, invSa, invDa),
		multiplyChannel(sg, dg, invSa, invDa),
		multiplyChannel(sb, db, invSa, invDa),
		addDiv255(sa, mulDiv255(da, invSa))
}

func multiplyChannel(s, d, invSa, invDa byte) byte {
	return addDiv255(addDiv255(mulDiv255(s, invDa), mulDiv255(d, invSa)), mulDiv255(s, d))
}
