// Package gridlink es el SDK cliente para el grid engine remoto.
//
// El engine vive en un runtime administrado aparte; todo acceso pasa por un
// Gateway que cruza esa frontera. Este paquete define el handle de sesión y
// la construcción perezosa de sus vistas derivadas:
//
//   - Session: handle top-level de una sesión establecida (ver Connect).
//   - TransactionsView: coordinador de transacciones de la sesión.
//   - ClusterGroupView: proyección del cluster y subgrupos derivados.
//   - ComputeView: ejecución de cómputo sobre los servidores del grupo.
//   - CacheView: vista de un cache nombrado del engine.
//
// Las vistas se resuelven una sola vez por sesión aunque haya llamadas
// concurrentes, comparten el Environment de la sesión, y cada una es dueña
// exclusiva de su referencia remota hasta que se cierra.
package gridlink
