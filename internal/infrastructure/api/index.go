package api

import (
	"fmt"
	"strings"

	"github.com/daxdesai/Closetly/internal/domain/valueobjects"
)

// indexHTML is assembled once at startup so the category selector always
// matches the fixed category set.
var indexHTML = fmt.Sprintf(indexTemplate, categoryOptions())

func categoryOptions() string {
	var b strings.Builder
	for _, c := range valueobjects.KnownCategories() {
		s := c.String()
		fmt.Fprintf(&b, "<option value=%q>%s</option>\n", s, strings.ToUpper(s[:1])+s[1:])
	}
	return strings.TrimSuffix(b.String(), "\n")
}

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1.0"/>
<title>Closetly - Virtual Try-On</title>
<style>
body{font-family:Inter,system-ui,sans-serif;background:#f9fafb;color:#1f2937;max-width:720px;margin:0 auto;padding:2rem}
h1{font-size:1.6rem}
form{background:#fff;border:1px solid #e5e7eb;border-radius:12px;padding:1.5rem;margin-bottom:1rem}
label{display:block;margin:.75rem 0 .25rem;font-weight:600}
button{background:#6366f1;color:#fff;border:0;border-radius:8px;padding:.6rem 1.2rem;cursor:pointer}
#result img{max-width:100%%;border-radius:12px;margin-top:1rem}
</style>
</head>
<body>
<h1>Closetly Virtual Try-On</h1>
<form id="tryon-form">
<label>Garment photos</label>
<input type="file" name="garment" accept="image/*" multiple required>
<label>Category</label>
<select name="category">
%s
</select>
<label>Model</label>
<label><input type="radio" name="gender" value="female" checked> Female</label>
<label><input type="radio" name="gender" value="male"> Male</label>
<label><input type="radio" name="gender" value="neutral"> Neutral</label>
<button type="submit">Try on</button>
</form>
<div id="result"></div>
<script>
document.getElementById('tryon-form').addEventListener('submit', async (e) => {
  e.preventDefault();
  const res = await fetch('/tryon', {method:'POST', body:new FormData(e.target)});
  const out = document.getElementById('result');
  if (!res.ok) { out.textContent = (await res.json()).error; return; }
  const data = await res.json();
  out.innerHTML = '<img src="data:'+data.mimeType+';base64,'+data.bytesBase64Encoded+'">';
});
</script>
</body>
</html>`
