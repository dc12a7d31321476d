// Package enumjen generates TypeScript const enum declarations from
// structured data: JSON and YAML documents, CSV tables, and in-memory objects
// and lists.
//
// Every conversion shapes its input into [EnumSpec] values, renders them with
// a jenny ([EnumJenny] or [BundleJenny]) collected in a [JennyList], and
// writes the resulting [FS] to disk in one batch. Nothing is written unless
// every earlier step succeeded.
//
//	c := &enumjen.Converter{OutDir: "gen"}
//	err := c.FromJSON(ctx, "countries.json", "Country")
//
// produces gen/Country.ts:
//
//	const enum Country {
//	  US = "United States",
//	  FR = "France",
//	}
//
//	export default Country;
//
// In CI, set [Converter.Verify] to check committed output against its source
// data rather than rewrite it.
package enumjen
