package meter

// Meter is one catalogue entry: a weight pattern (feet separated by '/',
// hemistich caesura marked '+') and its Urdu display name.
type Meter struct {
	Pattern string
	Name    string
}

// Foot is a named rukn template.
type Foot struct {
	Pattern string
	Name    string
}

// Standard catalogue. Order is load-bearing: indices identify meters
// throughout the engine, and same-name runs are variants of one bahr.
var meters = []Meter{
	{Pattern: "-===/-===/-===/-===", Name: "ہزج مثمن سالم"},
	{Pattern: "-===/-===/-===/-==", Name: "ہزج مثمن محذوف"},
	{Pattern: "-=-=/-=-=/-=-=/-=-=", Name: "ہزج مثمن مقبوض"},
	{Pattern: "=-=/-===+=-=/-===", Name: "ہزج مثمن اشتر"},
	{Pattern: "-=-=/-===/-=-=/-===", Name: "ہزج مثمن مقبوض سالم"},
	{Pattern: "==-/-==-/-==-/-===", Name: "ہزج مثمن اخرب مکفوف سالم"},
	{Pattern: "==-/-===+==-/-===", Name: "ہزج مثمن اخرب سالم"},
	{Pattern: "==-/-==-/-==-/-==", Name: "ہزج مثمن اخرب مکفوف محذوف"},
	{Pattern: "===/==-/-==-/-==", Name: "ہزج مثمن اخرب مکفوف محذوف"},
	{Pattern: "==-/-===/==-/-==", Name: "ہزج مثمن اخرب مکفوف محذوف"},
	{Pattern: "==-/-==-/-===/==", Name: "ہزج مثمن اخرب مکفوف محذوف"},
	{Pattern: "-===/-===/-===", Name: "ہزج مسدس سالم"},
	{Pattern: "-===/-===/-==", Name: "ہزج مسدس محذوف"},
	{Pattern: "==-/-=-=/-==", Name: "ہزج مسدس اخرب مقبوض محذوف"},
	{Pattern: "===/=-=/-==", Name: "ہزج مسدس اخرم اشتر محذوف"},
	{Pattern: "=-=/-=-=+=-=/-=-=", Name: "ہزج مربع اشتر مقبوض مضاعف"},
	{Pattern: "-===/-==", Name: "ہزج مربع محذوف"},
	{Pattern: "-===/-==+-===/-==", Name: "ہزج مربع محذوف مضاعف"},
	{Pattern: "==-=/==-=/==-=/==-=", Name: "رجز مثمن سالم"},
	{Pattern: "=--=/=--=/=--=/=--=", Name: "رجز مثمن مطوی"},
	{Pattern: "=--=/-=-=+=--=/-=-=", Name: "رجز مثمن مطوی مخبون"},
	{Pattern: "-=-=/=--=+-=-=/=--=", Name: "رجز مثمن مخبون مطوی"},
	{Pattern: "==-=/==-=/==-=", Name: "رجز مسدس سالم"},
	{Pattern: "=--=/=--=/=--=", Name: "رجز مسدس مطوی"},
	{Pattern: "=-==/=-==/=-==/=-==", Name: "رمل مثمن سالم"},
	{Pattern: "=-==/=-==/=-==/=-=", Name: "رمل مثمن محذوف"},
	{Pattern: "=-==/--==/--==/--=", Name: "رمل مثمن سالم مخبون محذوف"},
	{Pattern: "--==/--==/--==/--=", Name: "رمل مثمن سالم مخبون محذوف"},
	{Pattern: "=-==/--==/--==/==", Name: "رمل مثمن مخبون محذوف مقطوع"},
	{Pattern: "--==/--==/--==/==", Name: "رمل مثمن مخبون محذوف مقطوع"},
	{Pattern: "--=-/=-==+--=-/=-==", Name: "رمل مثمن مشکول"},
	{Pattern: "==-/=-==+==-/=-==", Name: "رمل مثمن مشکول مسکّن"},
	{Pattern: "--==/--==/--==/--==", Name: "رمل مثمن مخبون"},
	{Pattern: "=-==/=-==/=-==", Name: "رمل مسدس سالم"},
	{Pattern: "=-==/=-==/=-=", Name: "رمل مسدس محذوف"},
	{Pattern: "=-==/--==/--=", Name: "رمل مسدس مخبون محذوف"},
	{Pattern: "=-==/--==/==", Name: "رمل مسدس مخبون محذوف مسکن"},
	{Pattern: "--==/--==/--=", Name: "رمل مسدس مخبون محذوف"},
	{Pattern: "--==/--==/==", Name: "رمل مسدس مخبون محذوف مسکن"},
	{Pattern: "--==/--==/--==", Name: "رمل مسدس مخبون"},
	{Pattern: "-==/-==/-==/-==", Name: "متقارب مثمن سالم"},
	{Pattern: "-==/-==/-==/-==/-==/-==/-==/-==", Name: "متقارب مثمن سالم مضاعف"},
	{Pattern: "-==/-==/-==/-=", Name: "متقارب مثمن محذوف"},
	{Pattern: "=-/-=-/-=-/-==", Name: "متقارب مثمن اثرم مقبوض"},
	{Pattern: "=-/-=-/-=-/-=", Name: "متقارب مثمن اثرم مقبوض محذوف"},
	{Pattern: "=-/-=-/-=-/-=-/-=-/-=-/-=-/-=", Name: "متقارب مثمن اثرم مقبوض مضاعف"},
	{Pattern: "=-/-=-/-=-/-=-/-=-/-=-/-=-/-==", Name: "متقارب مثمن اثرم مقبوض محذوف مضاعف"},
	{Pattern: "-==/-==/-==", Name: "متقارب مسدس سالم"},
	{Pattern: "-==/-==/-=", Name: "متقارب مسدس محذوف"},
	{Pattern: "==/-==/==/-==", Name: "متقارب مربع اثلم سالم مضاعف"},
	{Pattern: "=-=/=-=/=-=/=-=", Name: "متدارک مثمن سالم"},
	{Pattern: "--=/--=/--=/--=", Name: "متدارک مثمن مخبون"},
	{Pattern: "--=/--=/--=/--=/--=/--=/--=/--=", Name: "متدارک مثمن مخبون مضاعف"},
	{Pattern: "=-=/=-=/=-=/--=", Name: "متدارک مثمن سالم مقطوع"},
	{Pattern: "=-=/=-=/=-=", Name: "متدارک مسدس سالم"},
	{Pattern: "=-=/-=/=-=/-=", Name: "متدارک مربع مخلع مضاعف"},
	{Pattern: "--=-=/--=-=/--=-=/--=-=", Name: "کامل مثمن سالم"},
	{Pattern: "--=-=/--=-=/--=-=", Name: "کامل مسدس سالم"},
	{Pattern: "-=--=/-=--=/-=--=/-=--=", Name: "وافر مثمن سالم"},
	{Pattern: "-=--=/-=--=/-=--=", Name: "وافر مسدس سالم"},
	{Pattern: "-=--=/-=--=/-==", Name: "وافر مسدس مقطوف"},
	{Pattern: "-===/=-==/-===/=-==", Name: "مضارع مثمن سالم"},
	{Pattern: "-==-/=-=-/-==-/=-=", Name: "مضارع مثمن مکفوف محذوف"},
	{Pattern: "==-/=-==/==-/=-==", Name: "مضارع مثمن اخرب"},
	{Pattern: "==-/=-=-/-==-/=-=", Name: "مضارع مثمن اخرب مکفوف محذوف"},
	{Pattern: "==-/=-==/==-/=-=", Name: "مضارع مثمن اخرب محذوف"},
	{Pattern: "==-/=-=-/-===", Name: "مضارع مسدس اخرب مکفوف"},
	{Pattern: "==-=/=-==/==-=/=-==", Name: "مجتث مثمن سالم"},
	{Pattern: "-=-=/--==/-=-=/--==", Name: "مجتث مثمن مخبون"},
	{Pattern: "-=-=/===/-=-=/--==", Name: "مجتث مثمن مخبون"},
	{Pattern: "-=-=/--==/-=-=/===", Name: "مجتث مثمن مخبون"},
	{Pattern: "-=-=/===/-=-=/===", Name: "مجتث مثمن مخبون"},
	{Pattern: "-=-=/--==/-=-=/--=", Name: "مجتث مثمن مخبون محذوف"},
	{Pattern: "-=-=/===/-=-=/--=", Name: "مجتث مثمن مخبون محذوف"},
	{Pattern: "-=-=/--==/-=-=/==", Name: "مجتث مثمن مخبون محذوف مسکن"},
	{Pattern: "-=-=/===/-=-=/==", Name: "مجتث مثمن مخبون محذوف مسکن"},
	{Pattern: "-=-=/--==/-=-=", Name: "مجتث مسدس مخبون"},
	{Pattern: "-=-=/===/-=-=", Name: "مجتث مسدس مخبون"},
	{Pattern: "==-=/===-/==-=/===-", Name: "منسرح مثمن سالم"},
	{Pattern: "=--=/=-=+=--=/=-=", Name: "منسرح مثمن مطوی مکسوف"},
	{Pattern: "=--=/=-=-/=--=/=", Name: "منسرح مثمن مطوی منحور"},
	{Pattern: "=--=/=-=/=--=", Name: "منسرح مسدس مطوی مکسوف"},
	{Pattern: "===-/==-=/===-/==-=", Name: "مقتضب مثمن سالم"},
	{Pattern: "=-=-/=--=/=-=-/=--=", Name: "مقتضب مثمن مطوی"},
	{Pattern: "==-=/==-=/===-", Name: "سریع مسدس سالم"},
	{Pattern: "=--=/=--=/=-=", Name: "سریع مسدس مطوی مکسوف"},
	{Pattern: "==-=/==-=/-==", Name: "سریع مسدس مخبون مکسوف"},
	{Pattern: "=-==/==-=/=-==/==-=", Name: "خفیف مثمن سالم"},
	{Pattern: "=-==/==-=/=-==", Name: "خفیف مسدس سالم"},
	{Pattern: "--==/-=-=/--==", Name: "خفیف مسدس مخبون"},
	{Pattern: "=-==/-=-=/--=", Name: "خفیف مسدس مخبون محذوف"},
	{Pattern: "--==/-=-=/--=", Name: "خفیف مسدس مخبون محذوف"},
	{Pattern: "=-==/-=-=/==", Name: "خفیف مسدس مخبون محذوف مقطوع"},
	{Pattern: "--==/-=-=/==", Name: "خفیف مسدس مخبون محذوف مقطوع"},
	{Pattern: "=-==/-=-=/=", Name: "خفیف مسدس سالم مخبون محجوف"},
	{Pattern: "--==/-=-=/=", Name: "خفیف مسدس مخبون محجوف"},
	{Pattern: "-===/-==/-===", Name: "طویل مثمن سالم"},
	{Pattern: "-==/-===/-==/-=-=", Name: "طویل مثمن سالم مقبوض"},
	{Pattern: "-==/-=-=/-==/-=-=", Name: "طویل مثمن مقبوض"},
	{Pattern: "=-==/=-=/=-==/=-=", Name: "مدید مثمن سالم"},
	{Pattern: "--==/--=/--==/--=", Name: "مدید مثمن مخبون"},
	{Pattern: "--==/==/--==/--=", Name: "مدید مثمن مخبون"},
	{Pattern: "===/--=/--==/--=", Name: "مدید مثمن مخبون"},
	{Pattern: "--==/--=/===/--=", Name: "مدید مثمن مخبون"},
	{Pattern: "--==/--=/--==/==", Name: "مدید مثمن مخبون"},
	{Pattern: "=-==/--=/=-==/--=", Name: "مدید مثمن سالم مخبون"},
	{Pattern: "==-=/=-=/==-=/=-=", Name: "بسیط مثمن سالم"},
	{Pattern: "-=-=/--=/-=-=/--=", Name: "بسیط مثمن مخبون"},
	{Pattern: "-===/-===/=-==", Name: "قریب مسدس سالم"},
	{Pattern: "==-/-==-/=-==", Name: "قریب مسدس اخرب مکفوف"},
	{Pattern: "=-==/=-==/==-=", Name: "جدید مسدس سالم"},
	{Pattern: "--==/--==/-=-=", Name: "جدید مسدس مخبون"},
	{Pattern: "=-==/-===/-===", Name: "مشاکل مسدس سالم"},
	{Pattern: "=-=-/-==-/-==", Name: "مشاکل مسدس مکفوف محذوف"},
	{Pattern: "-=-==/-=-==/-=-==/-=-==", Name: "جمیل مثمن سالم"},
	{Pattern: "=-=/-===", Name: "ہزج مربع اشتر"},
	{Pattern: "=-=/-=-=", Name: "ہزج مربع اشتر مقبوض"},
	{Pattern: "-===/-===", Name: "ہزج مربع سالم"},
	{Pattern: "-=-=/-=-=/-=-=/-=", Name: "ہزج مثمن مقبوض محذوف"},
	{Pattern: "=-==/--==/--==", Name: "رمل مسدس مخبون"},
	{Pattern: "-===/-===", Name: "ہزج مربع سالم"},
	{Pattern: "=-==/=-==", Name: "رمل مربع سالم"},
	{Pattern: "=-==/=-=", Name: "ہزج مربع محذوف"},
	{Pattern: "-==/-==", Name: "متقارب مربع سالم"},
	{Pattern: "--=-=/--=-=", Name: "کامل مربع سالم"},
	{Pattern: "-==/-===", Name: "طویل مربع سالم"},
	{Pattern: "=-==/=-=", Name: "مدید مربع سالم"},
	{Pattern: "-===/-===/-===/-===/-===/-===/-===/-===", Name: "ہزج مثمن سالم مضاعف"},
	{Pattern: "-=-==/-=-==", Name: "جمیل مربع سالم"},
}

// usage masks catalogue entries disabled for matching.
var usage = []int{
	1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 0, 1, 0, 1, 0, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1,
}

// Rubai family. Matched only through the standard traversal; inputs in
// these meters typically come back unmatched (the family is unsupported).
var rubaiMeters = []Meter{
	{Pattern: "==-/-==-/-==-/-=", Name: "ہزج مثمّن اخرب مکفوف مجبوب"},
	{Pattern: "==-/-==-/-===/=", Name: "ہزج مثمّن اخرب مکفوف ابتر"},
	{Pattern: "==-/-=-=/-===/=", Name: "ہزج مثمّن اخرب مقبوض ابتر"},
	{Pattern: "==-/-=-=/-==-/-=", Name: "ہزج مثمّن اخرب مقبوض مکفوف مجبوب"},
	{Pattern: "===/=-=/-==-/-=", Name: "ہزج مثمّن اخرم اشتر مکفوف مجبوب"},
	{Pattern: "===/=-=/-===/=", Name: "ہزج مثمّن اخرم اشتر ابتر"},
	{Pattern: "==-/-===/===/=", Name: "ہزج مثمّن اخرب اخرم ابتر"},
	{Pattern: "==-/-===/==-/-=", Name: "ہزج مثمّن اخرب مجبوب"},
	{Pattern: "===/===/==-/-=", Name: "ہزج مثمّن اخرم اخرب مجبوب"},
	{Pattern: "===/===/===/=", Name: "ہزج مثمّن اخرم ابتر"},
	{Pattern: "===/==-/-===/=", Name: "ہزج مثمّن اخرم اخرب ابتر"},
	{Pattern: "===/==-/-==-/-=", Name: "ہزج مثمّن اخرم اخرب مکفوف مجبوب"},
}

// Hindi and Zamzama meters. Their parenthesised patterns mark optional
// longs; matching goes through the special-meter state machines.
var specialMeters = []Meter{
	{Pattern: "=(=)/=(=)/=(=)/=(=)/=(=)/=(=)/=(=)/=", Name: "بحرِ ہندی/ متقارب مثمن مضاعف"},
	{Pattern: "=(=)/=(=)/=(=)/=(=)/=(=)/=", Name: "بحرِ ہندی/ متقارب مسدس مضاعف"},
	{Pattern: "=(=)/=(=)/=(=)/=(=)/=(=)/=(=)/=(=)/==", Name: "بحرِ ہندی/ متقارب اثرم مقبوض محذوف مضاعف"},
	{Pattern: "=(=)/=(=)/=(=)/=", Name: "بحرِ ہندی/ متقارب مربع مضاعف"},
	{Pattern: "=(=)/=(=)/=(=)/==", Name: "بحرِ ہندی/ متقارب اثرم مقبوض محذوف"},
	{Pattern: "=(=)/=(=)/=", Name: "بحرِ ہندی/ متقارب مثمن محذوف"},
	{Pattern: "=(=)/=(=)/=(=)/=(=)/=(=)/==", Name: "بحرِ ہندی/ متقارب مسدس محذوف"},
	{Pattern: "=(=)/=(=)", Name: "بحرِ ہندی/ متقارب مربع محذوف"},
	{Pattern: "(=)=/(=)=/(=)=/(=)=/(=)=/(=)=/(=)=/(=)=", Name: "بحرِ زمزمہ/ متدارک مثمن مضاعف"},
	{Pattern: "(=)=/(=)=/(=)=/(=)=/(=)=/(=)=", Name: "بحرِ زمزمہ/ متدارک مسدس مضاعف"},
	{Pattern: "(=)=/(=)=/(=)=/(=)", Name: "بحرِ زمزمہ/ متدارک مربع مضاعف"},
}

var specialAfail = []string{
	"فعلن فعلن فعلن فعلن فعلن فعلن فعلن فع",
	"فعلن فعلن فعلن فعلن فعلن فع",
	"فعلن فعلن فعلن فعلن فعلن فعلن فعلن فعلن",
	"فعلن فعلن فعلن فع",
	"فعلن فعلن فعلن فعلن",
	"فعلن فعلن فع",
	"فعلن فعلن فعلن فعلن فعلن فعلن",
	"فعلن فعلن",
	"فعلن فعلن فعلن فعلن فعلن فعلن فعلن فعلن",
	"فعلن فعلن فعلن فعلن فعلن فعلن",
	"فعلن فعلن فعلن فعلن",
}

// Rukn templates; foot-name lookup is by exact pattern match.
var feet = []Foot{
	{Pattern: "===", Name: "مفعولن"},
	{Pattern: "==-=", Name: "مستفعلن"},
	{Pattern: "==-", Name: "مفعول"},
	{Pattern: "==", Name: "فِعْلن"},
	{Pattern: "=-==", Name: "فاعلاتن"},
	{Pattern: "=-=-", Name: "فاعلاتُ"},
	{Pattern: "=-=", Name: "فاعلن"},
	{Pattern: "=--=", Name: "مفتَعِلن"},
	{Pattern: "=-", Name: "فِعْل"},
	{Pattern: "=", Name: "فِع"},
	{Pattern: "-===", Name: "مفاعیلن"},
	{Pattern: "-==-", Name: "مفاعیل"},
	{Pattern: "-==", Name: "فعولن"},
	{Pattern: "-=-=", Name: "مفاعلن"},
	{Pattern: "-=-", Name: "فعول"},
	{Pattern: "-=", Name: "فَعَل"},
	{Pattern: "--==", Name: "فَعِلاتن"},
	{Pattern: "--=-=", Name: "متَفاعلن"},
	{Pattern: "--=-", Name: "فَعِلات"},
	{Pattern: "--=", Name: "فَعِلن"},
	{Pattern: "-=-==", Name: "مَفاعلاتن"},
	{Pattern: "===-", Name: "مفعولاتُ"},
	{Pattern: "-=--=", Name: "مفاعِلَتن"},
	{Pattern: "==-=-", Name: "مستفعلان"},
	{Pattern: "=-==-", Name: "فاعلاتان"},
	{Pattern: "=--=-", Name: "مفتَعِلان"},
	{Pattern: "-===-", Name: "مفاعیلان"},
	{Pattern: "-=-=-", Name: "مفاعلان"},
	{Pattern: "--==-", Name: "فَعِلاتان"},
	{Pattern: "--=-=-", Name: "متَفاعلان"},
	{Pattern: "-=-==-", Name: "مَفاعلاتان"},
	{Pattern: "-=--=-", Name: "مفاعِلَتان"},
}
