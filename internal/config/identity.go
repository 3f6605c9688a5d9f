package config

// Identity holds the personal data substituted into header templates.
// A nil field means "not set here, take it from the fallback layer".
// A present-but-empty string is a deliberate empty value and survives merging.
type Identity struct {
	// Author is the name of the author.
	Author *string `yaml:"author"`
	// AuthorMail is the mail address of the author.
	AuthorMail *string `yaml:"author-mail"`
	// CopyrightHolders names the copyright holders, if any.
	CopyrightHolders *string `yaml:"cp-holders"`
}

// EffectiveIdentity is a fully resolved identity with every field guaranteed
// to have a value. Produced by MergeIdentity.
type EffectiveIdentity struct {
	Author           string
	AuthorMail       string
	CopyrightHolders string
}

// MergeIdentity resolves an identity field by field: the specific value wins,
// the fallback fills the gaps. A field absent from both layers is a
// configuration error (ErrFieldUnset), never silently defaulted.
func MergeIdentity(specific, fallback Identity) (EffectiveIdentity, error) {
	author, err := resolveString("data.author", specific.Author, fallback.Author)
	if err != nil {
		return EffectiveIdentity{}, err
	}
	mail, err := resolveString("data.author-mail", specific.AuthorMail, fallback.AuthorMail)
	if err != nil {
		return EffectiveIdentity{}, err
	}
	holders, err := resolveString("data.cp-holders", specific.CopyrightHolders, fallback.CopyrightHolders)
	if err != nil {
		return EffectiveIdentity{}, err
	}

	return EffectiveIdentity{
		Author:           author,
		AuthorMail:       mail,
		CopyrightHolders: holders,
	}, nil
}
