package htmlexport

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.UserName}}'s Movie Collection</title>
  <style>
    body { font-family: sans-serif; background: #141414; color: #eee; margin: 0; padding: 2rem; }
    h1 { text-align: center; }
    .grid { display: flex; flex-wrap: wrap; gap: 1.5rem; justify-content: center; }
    .movie-card { width: 180px; background: #222; border-radius: 8px; padding: 0.75rem; text-align: center; }
    .movie-card img { width: 150px; height: 220px; object-fit: cover; border-radius: 4px; }
    .movie-title { font-weight: bold; margin-top: 0.5rem; }
    .movie-year, .movie-rating { color: #aaa; font-size: 0.9rem; }
    .movie-note { color: #888; font-size: 0.8rem; font-style: italic; margin-top: 0.25rem; }
  </style>
</head>
<body>
  <h1>{{.UserName}}'s Movie Collection</h1>
  <div class="grid">
{{- range .Cards}}
    <div class="movie-card">
      <a href="{{.IMDbLink}}" target="_blank">
        <img src="{{.PosterURL}}" alt="Poster of {{.Title}}">
      </a>
      <div class="movie-title">{{.Title}}</div>
      <div class="movie-year">{{.Year}}</div>
      <div class="movie-rating">&#9733; {{.Rating}}</div>
{{- if .Note}}
      <div class="movie-note">{{.Note}}</div>
{{- end}}
    </div>
{{- end}}
  </div>
</body>
</html>
`
