package page

import "github.com/amaumene/gomoviefavs/internal/constants"

// layout is the default page: both list containers plus an alert slot.
const layout = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>` + constants.AppName + `</title>
  <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css" rel="stylesheet">
  <style>
    ul.movie-list { list-style: none; padding: 0; display: flex; flex-wrap: wrap; gap: 1rem; }
    .card-img-top { height: 27rem; object-fit: cover; }
  </style>
</head>
<body>
  <main class="container py-4">
    <div id="` + constants.AlertID + `" class="alert d-none"></div>
    <section>
      <h2>Movies</h2>
      <ul id="` + constants.MoviesListID + `" class="movie-list"></ul>
    </section>
    <section>
      <h2>Favourites</h2>
      <ul id="` + constants.FavouritesListID + `" class="movie-list"></ul>
    </section>
  </main>
</body>
</html>`
